package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formhandler/pkg/sanitizer"
)

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"trim", sanitizer.Trim, "  x \n", "x"},
		{"title", sanitizer.ToTitle, "jane doe", "Jane Doe"},
		{"whitespace", sanitizer.NormalizeWhitespace, " a \t b\n\nc ", "a b c"},
		{"single line", sanitizer.SingleLine, "line one\r\nline two", "line one line two"},
		{"control chars", sanitizer.RemoveControlChars, "a\x00b\tc", "ab\tc"},
		{"strip html", sanitizer.StripHTML, `<b>Hi</b> <script>alert(1)</script>there`, "Hi there"},
		{"strip html entities", sanitizer.StripHTML, `Tom &amp; <i>Jerry</i>`, "Tom & Jerry"},
		{"safe html", sanitizer.SafeHTML, `<b onclick="x()">Hi</b>`, "<b>Hi</b>"},
		{"email", sanitizer.NormalizeEmail, " John..Doe.@Example.COM ", "john.doe@example.com"},
		{"email invalid", sanitizer.NormalizeEmail, " Not-An-Email ", "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "жу", sanitizer.MaxLength("жук", 2))
	assert.Equal(t, "abc", sanitizer.MaxLength("abc", 5))
	assert.Empty(t, sanitizer.MaxLength("abc", 0))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWhitespace, sanitizer.ToLower)
	assert.Equal(t, "mixed case input", clean("  Mixed CASE   Input\n"))
	assert.Equal(t, 6, sanitizer.Apply(1, func(n int) int { return n + 2 }, func(n int) int { return n * 2 }))
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	clean, err := sanitizer.Pipeline("trim, lower,,single")
	require.NoError(t, err)
	assert.Equal(t, "a b", clean("  A\nB "))

	clean, err = sanitizer.Pipeline("")
	require.NoError(t, err)
	assert.Nil(t, clean)

	_, err = sanitizer.Pipeline("trim,shout")
	assert.ErrorIs(t, err, sanitizer.ErrUnknownRule)
}

func TestStruct(t *testing.T) {
	t.Parallel()

	type nested struct {
		Note string `sanitize:"trim"`
	}
	type input struct {
		Name    string   `sanitize:"trim,title"`
		Email   string   `sanitize:"email"`
		Message string   `sanitize:"trim,strip_html"`
		Tags    []string `sanitize:"trim,lower"`
		Nick    *string  `sanitize:"trim"`
		Raw     string   `sanitize:"-"`
		Plain   string
		Nested  nested
		hidden  string
	}

	nick := "  nick "
	in := input{
		Name:    "  jane doe ",
		Email:   "JANE@Example.com",
		Message: " <p>Hello</p> ",
		Tags:    []string{" A ", "b"},
		Nick:    &nick,
		Raw:     " raw ",
		Plain:   " plain ",
		Nested:  nested{Note: " note "},
		hidden:  " hidden ",
	}

	require.NoError(t, sanitizer.Struct(&in))

	assert.Equal(t, "Jane Doe", in.Name)
	assert.Equal(t, "jane@example.com", in.Email)
	assert.Equal(t, "Hello", in.Message)
	assert.Equal(t, []string{"a", "b"}, in.Tags)
	assert.Equal(t, "nick", *in.Nick)
	assert.Equal(t, " raw ", in.Raw)
	assert.Equal(t, " plain ", in.Plain)
	assert.Equal(t, "note", in.Nested.Note)
	assert.Equal(t, " hidden ", in.hidden)
}

func TestStruct_Errors(t *testing.T) {
	t.Parallel()

	type bad struct {
		Name string `sanitize:"shout"`
	}
	require.ErrorIs(t, sanitizer.Struct(&bad{}), sanitizer.ErrUnknownRule)

	var s string
	require.ErrorIs(t, sanitizer.Struct(&s), sanitizer.ErrInvalidTarget)
	require.ErrorIs(t, sanitizer.Struct(bad{}), sanitizer.ErrInvalidTarget)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	sanitizer.Register("shout_test", func(s string) string { return strings.ToUpper(s) + "!" })
	fn, ok := sanitizer.Lookup("shout_test")
	require.True(t, ok)
	assert.Equal(t, "HI!", fn("hi"))

	type in struct {
		Word string `sanitize:"shout_test"`
	}
	v := in{Word: "hey"}
	require.NoError(t, sanitizer.Struct(&v))
	assert.Equal(t, "HEY!", v.Word)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	type inner struct{ Note string }
	type input struct {
		Name  string
		Raw   string `sanitize:"-"`
		Tags  []string
		Inner inner
		Count int
	}

	in := input{Name: " a ", Raw: " r ", Tags: []string{" t "}, Inner: inner{Note: " n "}, Count: 3}
	require.NoError(t, sanitizer.Strings(&in, sanitizer.Trim))

	assert.Equal(t, input{Name: "a", Raw: " r ", Tags: []string{"t"}, Inner: inner{Note: "n"}, Count: 3}, in)
	assert.ErrorIs(t, sanitizer.Strings(in, sanitizer.Trim), sanitizer.ErrInvalidTarget)
}
