package odata

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	testDTO struct {
		ID      int `odata:"Id"`
		Name    string
		Address string
		Amount  float64
		Contact *subTestDTO
		secret  string
	}
	subTestDTO struct {
		FirstName string
		LastName  string
		BirthDate time.Time
		Address   subSubTestDTO
	}
	subSubTestDTO struct {
		StreetName string
		City       string
	}
)

func TestSchemaOf(t *testing.T) {
	s, err := SchemaOf(&testDTO{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Id", "Name", "Address", "Amount"}, s.Fields())
	assert.False(t, s.HasField("secret"))
	assert.False(t, s.HasField("Contact"))

	contact, ok := s.Nav("Contact")
	require.True(t, ok)
	assert.Equal(t, []string{"FirstName", "LastName", "BirthDate"}, contact.Fields())

	address, ok := contact.Nav("Address")
	require.True(t, ok)
	assert.True(t, address.HasField("City"))
	_, ok = address.Nav("City")
	assert.False(t, ok)
}

func TestSchemaOf_Tags(t *testing.T) {
	type base struct {
		CreatedAt time.Time
	}
	type tagged struct {
		base
		Secret string   `odata:"-"`
		Email  string   `odata:"email,omitempty"`
		IP     net.IP   // TextMarshaler, scalar
		Tags   []string // scalar slice
		Raw    []byte
	}
	s, err := SchemaOf(tagged{})
	require.NoError(t, err)
	assert.Equal(t, []string{"CreatedAt", "email", "IP", "Tags", "Raw"}, s.Fields())
}

func TestSchemaOf_Recursive(t *testing.T) {
	type node struct {
		Name     string
		Parent   *node
		Children []node
	}
	s, err := SchemaOf(node{})
	require.NoError(t, err)
	parent, ok := s.Nav("Parent")
	require.True(t, ok)
	children, ok := s.Nav("Children")
	require.True(t, ok)
	assert.Same(t, s, parent)
	assert.Same(t, s, children)
}

func TestSchemaOf_NotStruct(t *testing.T) {
	for _, v := range []any{nil, 1, "x", []testDTO{}} {
		_, err := SchemaOf(v)
		assert.Error(t, err)
	}
}

func TestNewSchema(t *testing.T) {
	s := NewSchema("Id", "Name", "Id").
		Navigation("Contact", NewSchema("FirstName"))
	assert.Equal(t, []string{"Id", "Name"}, s.Fields())
	c, ok := s.Nav("Contact")
	require.True(t, ok)
	assert.True(t, c.HasField("FirstName"))
}

func TestParseUnknownFieldPolicy(t *testing.T) {
	for in, want := range map[string]UnknownFieldPolicy{
		"":             RejectUnknown,
		"reject":       RejectUnknown,
		"pass_through": PassThrough,
		"PassThrough":  PassThrough,
	} {
		got, err := ParseUnknownFieldPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseUnknownFieldPolicy("ignore")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "pass_through", PassThrough.String())
}
