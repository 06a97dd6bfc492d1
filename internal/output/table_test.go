package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	got := NewTable("A", "B").Row("one", "two").Row("three", "four").String()

	for _, want := range []string{"A", "B", "one", "two", "three", "four"} {
		assert.Contains(t, got, want)
	}
	assert.GreaterOrEqual(t, len(strings.Split(got, "\n")), 5, "header and two rows inside a border")
}

func TestRenderSettingsTable(t *testing.T) {
	got := RenderSettingsTable([]SettingRow{
		{Key: "tags", Value: "    ", Source: "default"},
		{Key: "width", Value: "100", Source: "env"},
	})

	assert.Contains(t, got, `"    "`)
	assert.Contains(t, got, `"100"`)
	assert.Contains(t, got, "KEY")
	assert.Contains(t, got, "env")
}
