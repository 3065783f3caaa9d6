package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIdentifier(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Snake Case", "get_user_name", []string{"get", "user", "name"}},
		{"Camel Case", "getUserName", []string{"get", "user", "name"}},
		{"Pascal Case", "GetUserName", []string{"get", "user", "name"}},
		{"Acronym Run", "HTTPServer", []string{"http", "server"}},
		{"Trailing Acronym", "parseJSON", []string{"parse", "json"}},
		{"Digits Attach", "decodeBase64", []string{"decode", "base64"}},
		{"Single Word", "process", []string{"process"}},
		{"Dunder", "__init__", []string{"init"}},
		{"Empty", "", nil},
		{"Underscores Only", "___", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitIdentifier(tc.in))
		})
	}
}

func TestBagFromIdentifier(t *testing.T) {
	bag := BagFromIdentifier("get_user_get")
	assert.Equal(t, 2, bag["get"])
	assert.Equal(t, 1, bag["user"])
	assert.Equal(t, 3, bag.Len())
}

func TestLeadingWord(t *testing.T) {
	assert.Equal(t, "delete", LeadingWord("delete_user"))
	assert.Equal(t, "fetch", LeadingWord("fetchData"))
	assert.Equal(t, "", LeadingWord("__"))
}

func TestBagKey(t *testing.T) {
	t.Run("Order Independent", func(t *testing.T) {
		a := NewBag("get", "user", "get")
		b := NewBag("user", "get", "get")
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("Distinct Contents Distinct Keys", func(t *testing.T) {
		a := NewBag("get", "user")
		b := NewBag("get", "user", "user")
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("Empty Bag", func(t *testing.T) {
		assert.Equal(t, "", NewBag().Key())
	})
}

func TestBagMerge(t *testing.T) {
	a := NewBag("set")
	a.Merge(NewBag("set", "check"))
	assert.Equal(t, 2, a["set"])
	assert.Equal(t, 1, a["check"])
}
