package wizard

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufioReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func accessiblePrompter(input string) *FormPrompter {
	return NewFormPrompter(strings.NewReader(input), &bytes.Buffer{}, true)
}

func TestFormPrompterConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "empty takes default false", input: "\n", def: false, want: false},
		{name: "empty takes default true", input: "\n", def: true, want: true},
		{name: "y", input: "y\n", def: false, want: true},
		{name: "yes", input: "yes\n", def: false, want: true},
		{name: "no", input: "no\n", def: true, want: false},
		{name: "last line without newline", input: "y", def: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accessiblePrompter(tt.input).Confirm("Continue?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormPrompterSelect(t *testing.T) {
	options := []Option{
		{Label: "Python", Value: "python"},
		{Label: "Node.js", Value: "nodejs"},
		{Label: "No preference", Value: "any"},
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "first", input: "1\n", want: "python"},
		{name: "second", input: "2\n", want: "nodejs"},
		{name: "third", input: "3\n", want: "any"},
		{name: "out of range is asked again", input: "4\n2\n", want: "nodejs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accessiblePrompter(tt.input).Select("Language?", options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormPrompterKeepsLaterAnswers(t *testing.T) {
	p := accessiblePrompter("y\n3\nn\n")

	first, err := p.Confirm("First?", false)
	require.NoError(t, err)
	choice, err := p.Select("Pick", []Option{{Label: "A", Value: "a"}, {Label: "B", Value: "b"}, {Label: "C", Value: "c"}})
	require.NoError(t, err)
	last, err := p.Confirm("Last?", true)
	require.NoError(t, err)

	assert.True(t, first)
	assert.Equal(t, "c", choice)
	assert.False(t, last)
}

func TestFormPrompterSelectNoOptions(t *testing.T) {
	_, err := accessiblePrompter("1\n").Select("Pick one", nil)
	require.Error(t, err)
}

func TestFormPrompterInputClosed(t *testing.T) {
	p := accessiblePrompter("")

	_, err := p.Confirm("Continue?", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))

	_, err = p.Select("Pick one", []Option{{Label: "A", Value: "a"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
}

func TestFormPrompterInputClosedAfterAnswers(t *testing.T) {
	p := accessiblePrompter("y\n")

	got, err := p.Confirm("First?", false)
	require.NoError(t, err)
	assert.True(t, got)

	_, err = p.Confirm("Second?", false)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAnswerReaderServesOneLinePerRead(t *testing.T) {
	a := &answerReader{r: bufioReader("one\ntwo\nthree")}
	buf := make([]byte, 64)

	a.begin()
	n, err := a.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(buf[:n]))

	n, err = a.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(buf[:n]))

	n, err = a.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "three", string(buf[:n]))

	_, err = a.Read(buf)
	assert.Equal(t, io.EOF, err)
	assert.False(t, a.closedWithoutAnswer(), "unterminated last line is an answer")

	a.begin()
	_, err = a.Read(buf)
	assert.Equal(t, io.EOF, err)
	assert.True(t, a.closedWithoutAnswer())
}

func TestAnswerReaderSmallBuffer(t *testing.T) {
	a := &answerReader{r: bufioReader("abc\n")}
	buf := make([]byte, 2)

	n, _ := a.Read(buf)
	assert.Equal(t, "ab", string(buf[:n]))
	n, _ = a.Read(buf)
	assert.Equal(t, "c\n", string(buf[:n]))
}
