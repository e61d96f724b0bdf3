package output

import (
	"bytes"
	"testing"

	"github.com/MuhammadAbdulBari/moon-phase/internal/testutil"
)

func TestDetailWriter(t *testing.T) {
	var buf bytes.Buffer
	d := NewDetailWriter(&buf, "MOON", "Full Moon")
	d.Fields([]KeyValue{
		KV("Date", "Fri Jan 21 2000"),
		KV("Illumination", "96%"),
		KV("Days since new moon", "14"),
	})
	d.Section("SUN")
	buf.WriteString("Sunrise 07:22, sunset 17:00\n")

	testutil.AssertSnapshot(t, "detail-view.txt", buf.String())
}

func TestDetailWriterSingleField(t *testing.T) {
	var buf bytes.Buffer
	d := NewDetailWriter(&buf, "CONFIG", "config.yml")
	d.Field("Timezone", "Local")

	testutil.AssertSnapshot(t, "detail-view-single-field.txt", buf.String())
}
