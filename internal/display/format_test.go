package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/picnamer/internal/config"
	"github.com/backmassage/picnamer/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"thumbnail", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"typical jpeg", 4404019, "4.2 MiB"},
		{"raw shoot", 5046586572, "4.7 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 photos", Plural(0, "photo"))
	assert.Equal(t, "1 photo", Plural(1, "photo"))
	assert.Equal(t, "12 names", Plural(12, "name"))
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Equal(t, banner, buf.String())
}
