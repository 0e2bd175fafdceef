package dmdebug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/dmark/internal/dmdebug"
	"github.com/yaklabco/dmark/pkg/dmtok"
)

func TestDump(t *testing.T) {
	src := []byte("plain \\name{body}\nsecond line")
	tokens := []dmtok.Token{
		{Begin: 6, Length: 5, Category: dmtok.CatMarkupTag},
		{Begin: 11, Length: 1, Category: dmtok.CatSymBrace},
	}

	out := dmdebug.Dump(src, tokens, dmdebug.NewStyles(false))

	assert.Contains(t, out, "markup_tag")
	assert.Contains(t, out, "sym_brace")
	assert.Contains(t, out, "[6,11)")
	assert.Contains(t, out, "[11,12)")
	assert.Contains(t, out, "plain \\name{body}")
}

func TestDumpLocatesSecondLine(t *testing.T) {
	src := []byte("first\nsecond\\name{}")
	tokens := []dmtok.Token{
		{Begin: 13, Length: 5, Category: dmtok.CatMarkupTag},
	}

	out := dmdebug.Dump(src, tokens, dmdebug.NewStyles(false))

	assert.Contains(t, out, ":2:")
	assert.True(t, strings.Contains(out, "second\\name{}"))
}
