// Package odata maps OData style query options onto SELECT statements.
//
// Supported options are $select, $expand, $top, $skip, $count=true and
// $inlinecount=allpages. Other system options are rejected.
//
//	m, err := odata.New(
//		odata.WithModel(User{}),
//		odata.WithTable("Users"),
//		odata.WithDialect(dialect.SQLServer),
//	)
//	if err != nil {
//		return err
//	}
//	res, err := m.Render(ctx, "$select=Id,Name&$top=10&$inlinecount=allpages")
//
// Selected properties of expanded navigations are mapped to columns
// prefixed with the navigation path, e.g. "Contact/FirstName". A mapper
// can also be configured from a YAML file; see LoadConfig.
package odata
