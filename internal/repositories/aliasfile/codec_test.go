package aliasfile

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/AntonioJCosta/dosalias/internal/core/domain/alias"
)

func TestParseDoskeyLine(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantName     string
		wantCommands []string
		wantOK       bool
	}{
		{
			name:         "single command",
			line:         "DOSKEY ll=dir /w",
			wantName:     "ll",
			wantCommands: []string{"dir /w"},
			wantOK:       true,
		},
		{
			name:         "chained commands",
			line:         "DOSKEY foo=echo hi $T echo bye",
			wantName:     "foo",
			wantCommands: []string{"echo hi", "echo bye"},
			wantOK:       true,
		},
		{
			name:         "lowercase keyword",
			line:         "doskey X=echo hi",
			wantName:     "X",
			wantCommands: []string{"echo hi"},
			wantOK:       true,
		},
		{
			name:         "mixed case keyword",
			line:         "DosKey g=git $*",
			wantName:     "g",
			wantCommands: []string{"git $*"},
			wantOK:       true,
		},
		{
			name:         "only first equals splits",
			line:         "DOSKEY setx=set A=1 $T echo %A%",
			wantName:     "setx",
			wantCommands: []string{"set A=1", "echo %A%"},
			wantOK:       true,
		},
		{
			name:         "commands are trimmed",
			line:         "DOSKEY t=  cls   $T  dir  ",
			wantName:     "t",
			wantCommands: []string{"cls", "dir"},
			wantOK:       true,
		},
		{
			name:         "empty command blob",
			line:         "DOSKEY noop=",
			wantName:     "noop",
			wantCommands: []string{""},
			wantOK:       true,
		},
		{
			name:         "unspaced $T is not a separator",
			line:         "DOSKEY a=x$Ty",
			wantName:     "a",
			wantCommands: []string{"x$Ty"},
			wantOK:       true,
		},
		{
			name:         "trailing carriage return",
			line:         "DOSKEY a=x\r",
			wantName:     "a",
			wantCommands: []string{"x"},
			wantOK:       true,
		},
		{name: "no equals", line: "DOSKEY /macros", wantOK: false},
		{name: "empty name", line: "DOSKEY =dir", wantOK: false},
		{name: "name with space", line: "DOSKEY a b=echo", wantOK: false},
		{name: "echo line", line: "ECHO %date% %time%", wantOK: false},
		{name: "echo off", line: "@echo off", wantOK: false},
		{name: "keyword without space", line: "DOSKEYa=b", wantOK: false},
		{name: "keyword with tab", line: "DOSKEY\ta=b", wantOK: false},
		{name: "leading whitespace", line: "  DOSKEY a=b", wantOK: false},
		{name: "empty line", line: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotCommands, gotOK := parseDoskeyLine(tt.line)
			if gotOK != tt.wantOK {
				t.Fatalf("parseDoskeyLine(%q) ok = %v, want %v", tt.line, gotOK, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if gotName != tt.wantName {
				t.Errorf("parseDoskeyLine(%q) name = %q, want %q", tt.line, gotName, tt.wantName)
			}
			if !reflect.DeepEqual(gotCommands, tt.wantCommands) {
				t.Errorf("parseDoskeyLine(%q) commands = %#v, want %#v", tt.line, gotCommands, tt.wantCommands)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	c := qt.New(t)

	c.Run("two chained commands", func(c *qt.C) {
		got, err := Decode(strings.NewReader("DOSKEY foo=echo hi $T echo bye\n"))
		c.Assert(err, qt.IsNil)
		c.Assert(got.All(), qt.DeepEquals, []alias.Alias{
			{Name: "foo", Commands: []string{"echo hi", "echo bye"}},
		})
	})

	c.Run("blank file", func(c *qt.C) {
		got, err := Decode(strings.NewReader(""))
		c.Assert(err, qt.IsNil)
		c.Assert(got.Len(), qt.Equals, 0)
	})

	c.Run("crlf and lf mixed, header dropped", func(c *qt.C) {
		text := "@echo off\r\nECHO hello\r\nDOSKEY a=x\r\ndoskey b=y $T z\nREM done\n"
		got, err := Decode(strings.NewReader(text))
		c.Assert(err, qt.IsNil)
		c.Assert(got.All(), qt.DeepEquals, []alias.Alias{
			{Name: "a", Commands: []string{"x"}},
			{Name: "b", Commands: []string{"y", "z"}},
		})
	})

	c.Run("duplicate name keeps first position with last value", func(c *qt.C) {
		text := "DOSKEY a=1\nDOSKEY b=2\nDOSKEY a=3\n"
		got, err := Decode(strings.NewReader(text))
		c.Assert(err, qt.IsNil)
		c.Assert(got.All(), qt.DeepEquals, []alias.Alias{
			{Name: "a", Commands: []string{"3"}},
			{Name: "b", Commands: []string{"2"}},
		})
	})
}

func TestEncode(t *testing.T) {
	c := qt.New(t)

	c.Run("lines follow collection order", func(c *qt.C) {
		coll := alias.NewCollection()
		c.Assert(coll.Add("a", []string{"x"}), qt.IsNil)
		c.Assert(coll.Add("b", []string{"y", "z"}), qt.IsNil)

		var buf bytes.Buffer
		c.Assert(Encode(&buf, coll), qt.IsNil)

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
		c.Assert(lines[:len(header)], qt.DeepEquals, header)
		c.Assert(lines[len(header):], qt.DeepEquals, []string{"DOSKEY a=x", "DOSKEY b=y $T z"})
	})

	c.Run("empty collection writes only the header", func(c *qt.C) {
		var buf bytes.Buffer
		c.Assert(Encode(&buf, alias.NewCollection()), qt.IsNil)
		c.Assert(buf.String(), qt.Equals, strings.Join(header, "\r\n")+"\r\n")
	})

	c.Run("command with line break is rejected before writing", func(c *qt.C) {
		coll := alias.NewCollection()
		c.Assert(coll.Add("ok", []string{"dir"}), qt.IsNil)
		coll.Put("x", []string{"echo a\nDOSKEY evil=del *"})
		var buf bytes.Buffer
		err := Encode(&buf, coll)
		c.Assert(err, qt.ErrorIs, alias.ErrInvalidCommand)
		c.Assert(buf.Len(), qt.Equals, 0)
	})

	c.Run("alias without commands is rejected before writing", func(c *qt.C) {
		coll := alias.NewCollection()
		coll.Put("broken", nil)
		var buf bytes.Buffer
		err := Encode(&buf, coll)
		c.Assert(err, qt.ErrorIs, alias.ErrEmptyCommands)
		c.Assert(buf.Len(), qt.Equals, 0)
	})
}

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)

	c.Run("decode of encode returns the same collection", func(c *qt.C) {
		coll := alias.NewCollection()
		c.Assert(coll.Add("gs", []string{"git status"}), qt.IsNil)
		c.Assert(coll.Add("up", []string{"cd ..", "dir"}), qt.IsNil)
		c.Assert(coll.Add("noop", []string{""}), qt.IsNil)
		c.Assert(coll.Add("gaps", []string{"", "echo mid", ""}), qt.IsNil)
		c.Assert(coll.Add("eq", []string{"set X=1", "echo %X% $*"}), qt.IsNil)
		c.Assert(coll.Add("padded", []string{" echo a ", "\tdir"}), qt.IsNil)

		var buf bytes.Buffer
		c.Assert(Encode(&buf, coll), qt.IsNil)
		got, err := Decode(&buf)
		c.Assert(err, qt.IsNil)
		c.Assert(got.All(), qt.DeepEquals, coll.All())
	})

	c.Run("commands that would not survive a reload are refused", func(c *qt.C) {
		coll := alias.NewCollection()
		for _, cmds := range [][]string{
			{"echo a $T echo b"},
			{"echo a\nDOSKEY evil=del *"},
			{"echo a\r"},
		} {
			c.Assert(coll.Add("x", cmds), qt.ErrorIs, alias.ErrInvalidCommand, qt.Commentf("commands %q", cmds))
		}
		c.Assert(coll.Len(), qt.Equals, 0)
	})

	c.Run("decode skips names the collection would refuse", func(c *qt.C) {
		got, err := Decode(strings.NewReader("DOSKEY a b=echo\r\nDOSKEY ok=dir\r\n"))
		c.Assert(err, qt.IsNil)
		c.Assert(got.Names(), qt.DeepEquals, []string{"ok"})
	})

	c.Run("encode of decode preserves alias lines", func(c *qt.C) {
		text := "@echo off\nDOSKEY z=last\nDOSKEY a=first $T second\n"
		first, err := Decode(strings.NewReader(text))
		c.Assert(err, qt.IsNil)

		var buf bytes.Buffer
		c.Assert(Encode(&buf, first), qt.IsNil)
		second, err := Decode(&buf)
		c.Assert(err, qt.IsNil)
		c.Assert(second.All(), qt.DeepEquals, first.All())
		c.Assert(second.Names(), qt.DeepEquals, []string{"z", "a"})
	})
}
