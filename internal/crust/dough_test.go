package crust

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/figlet"
)

func demoOptions() Options {
	opts := DefaultOptions()
	opts.Blocks = []string{"setup", "helpers"}
	opts.Length = 5
	opts.Tags = "    "
	opts.Main = true
	opts.Foot = false
	return opts
}

func namebar(left int, label string, right int) string {
	return strings.Repeat("#", left) + "  " + label + "  " + strings.Repeat("#", right) + "\n"
}

func TestDough_Demo(t *testing.T) {
	got, err := Dough(context.Background(), "demo", demoOptions())
	require.NoError(t, err)

	preset := PythonPreset()
	want := Join([]string{
		"#!/usr/bin/env python3\n",
		"\"\"\"docstring for demo\"\"\"\n\n",
		preset.Imports,
		strings.Repeat("#", 79) + "\n",
		"\n\n\n", namebar(35, "setup", 35), strings.Repeat("\n", 6), namebar(35, "setup", 35),
		"\n\n\n", namebar(34, "helpers", 34), strings.Repeat("\n", 6), namebar(34, "helpers", 34),
		"\n\n\n", namebar(36, "main", 35), preset.MainBody, namebar(36, "main", 35),
		"#EOF",
	})
	assert.Equal(t, want, got)
}

func TestDough_DemoShape(t *testing.T) {
	got, err := Dough(context.Background(), "demo", demoOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "#!/usr/bin/env python3\n"))
	assert.Contains(t, got, `"""docstring for demo"""`)
	assert.True(t, strings.HasSuffix(got, EOF))
	assert.NotContains(t, got, "##  \n", "no footer placeholder expected")

	for _, label := range []string{"setup", "helpers"} {
		bar := "  " + label + "  "
		first := strings.Index(got, bar)
		last := strings.LastIndex(got, bar)
		require.NotEqual(t, first, last, "block %s should have two bars", label)

		between := got[first:last]
		between = between[strings.Index(between, "\n")+1:]
		between = between[:strings.LastIndex(between, "\n")+1]
		assert.Equal(t, 6, strings.Count(between, "\n"), "block %s body lines", label)
	}

	assert.Contains(t, got, "def __main__():")
	assert.Less(t, strings.Index(got, "helpers"), strings.Index(got, "  main  "))
}

func TestDough_Ego(t *testing.T) {
	opts := demoOptions()
	opts.Ego = true

	got, err := Dough(context.Background(), "demo", opts)
	require.NoError(t, err)

	ego := "from pathlib import Path\nego = Path(\"demo\")\n\n"
	assert.Contains(t, got, ego)
	assert.Less(t, strings.Index(got, "# import timeit"), strings.Index(got, ego))
	assert.Less(t, strings.Index(got, ego), strings.Index(got, strings.Repeat("#", 79)))
}

func TestDough_FooterWithoutArt(t *testing.T) {
	opts := demoOptions()
	opts.Main = false
	opts.Foot = true

	got, err := Dough(context.Background(), "demo", opts)
	require.NoError(t, err)

	bar := strings.Repeat("#", 79) + "\n"
	footer := bar + strings.Repeat("##  \n", 3) + bar + EOF
	assert.True(t, strings.HasSuffix(got, footer), got)
	assert.NotContains(t, got, "def __main__")
}

func TestDough_MultiCharBar(t *testing.T) {
	opts := demoOptions()
	opts.Width = 10
	opts.Bar = "=-"
	opts.Blocks = nil
	opts.Main = false

	got, err := Dough(context.Background(), "demo", opts)
	require.NoError(t, err)

	bar := strings.Repeat("=-", 9) + "\n"
	assert.Contains(t, got, "\n"+bar)
	assert.Equal(t, 18, len(strings.TrimSuffix(bar, "\n")))
}

func TestDough_FigletHeadersAndFooter(t *testing.T) {
	stub := &stubRunner{out: "ART\n", ok: true}
	opts := demoOptions()
	opts.Art = figlet.New(stub)
	opts.Foot = true

	got, err := Dough(context.Background(), "demo", opts)
	require.NoError(t, err)

	// setup, helpers, main, footer
	require.Len(t, stub.calls, 4)
	assert.Equal(t, []string{"-k", "-w", "76", "setup"}, stub.calls[0])
	assert.Equal(t, []string{"-k", "-w", "76", "helpers"}, stub.calls[1])
	assert.Equal(t, []string{"-k", "-w", "76", "main"}, stub.calls[2])
	assert.Equal(t, []string{"-k", "-f", "big", "-w", "76", "demo"}, stub.calls[3])

	assert.Equal(t, 4, strings.Count(got, "##  ART\n"))
	assert.Contains(t, got, "##  ART\n"+namebar(35, "setup", 35))
}

func TestDough_CustomProfiles(t *testing.T) {
	stub := &stubRunner{out: "ART\n", ok: true}
	opts := demoOptions()
	opts.Blocks = []string{"one"}
	opts.Main = false
	opts.Foot = true
	opts.Art = figlet.New(stub)
	opts.HeaderProfile = figlet.Big
	opts.FooterProfile = figlet.Standard

	_, err := Dough(context.Background(), "demo", opts)
	require.NoError(t, err)

	require.Len(t, stub.calls, 2)
	assert.Equal(t, []string{"-k", "-f", "big", "-w", "76", "one"}, stub.calls[0])
	assert.Equal(t, []string{"-k", "-w", "76", "demo"}, stub.calls[1])
}

func TestDough_Description(t *testing.T) {
	opts := demoOptions()
	opts.Width = 30
	opts.Blocks = nil
	opts.Main = false
	opts.Description = "Reads the ledger and prints a summary of every account balance."

	got, err := Dough(context.Background(), "ledger", opts)
	require.NoError(t, err)

	start := strings.Index(got, `"""docstring for ledger`)
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(got[start+3:], `"""`)
	require.Greater(t, end, 0)

	doc := got[start : start+3+end+3]
	for _, line := range strings.Split(doc, "\n") {
		assert.LessOrEqual(t, len(line), 29, "line %q exceeds width", line)
	}
	assert.Contains(t, doc, "account")
}

func TestDough_CustomPreset(t *testing.T) {
	opts := demoOptions()
	opts.Blocks = nil
	opts.Preset = Preset{Hashbang: "#!/usr/bin/env python3.12\n"}

	got, err := Dough(context.Background(), "demo", opts)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "#!/usr/bin/env python3.12\n"))
	assert.Contains(t, got, "# import collections", "unset preset fields keep defaults")
}

func TestDough_EmptyBlocks(t *testing.T) {
	opts := demoOptions()
	opts.Blocks = nil
	opts.Main = false

	got, err := Dough(context.Background(), "demo", opts)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, strings.Repeat("#", 79)+"\n"+EOF))
}

func TestDough_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"width too small for block", func(o *Options) { o.Width = 12 }},
		{"width below two", func(o *Options) { o.Width = 1 }},
		{"negative length", func(o *Options) { o.Length = -2 }},
		{"unknown footer profile", func(o *Options) {
			o.Foot = true
			o.Art = figlet.New(&stubRunner{ok: true})
			o.FooterProfile = "bgi"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := demoOptions()
			tt.mutate(&opts)

			_, err := Dough(context.Background(), "demo", opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestPresetWithDefaults(t *testing.T) {
	p := Preset{Suffix: ".pyw"}.WithDefaults()

	assert.Equal(t, ".pyw", p.Suffix)
	assert.Equal(t, PythonPreset().Hashbang, p.Hashbang)
	assert.Equal(t, PythonPreset().MainBody, p.MainBody)
}
