// Package graphql maps GraphQL selections onto odata query options, so a
// GraphQL resolver can reuse the odata mapper to build its SELECT.
//
// The root field of a query selects the entity set. Leaf fields become
// properties, fields with a selection set become expanded navigations and
// the paging arguments become $top and $skip:
//
//	opts, err := graphql.ParseSelection(`{
//	    users(first: 10, skip: 20) {
//	        totalCount
//	        Id
//	        Contact { FirstName }
//	    }
//	}`, nil)
//	if err != nil {
//	    return err
//	}
//	stmts, err := mapper.ToSelect(ctx, opts)
//
// Queries are parsed with gqlparser and are not validated against a
// GraphQL schema; the odata mapper's schema decides which fields exist.
package graphql
