package charts

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

func TestRenderScoreTrend(t *testing.T) {
	rounds := []*models.Round{
		{Course: "Local Muni", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Score: 90, Par: 72, RoundType: models.RoundType18},
		{Course: "Local Muni", Date: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), Score: 44, Par: 36, RoundType: models.RoundType9},
	}

	var buf bytes.Buffer
	if err := RenderScoreTrend(&buf, rounds, DefaultConfig()); err != nil {
		t.Fatalf("RenderScoreTrend: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "echarts") {
		t.Error("output does not embed echarts")
	}
	if !strings.Contains(html, "Score to Par") {
		t.Error("output missing series name")
	}
	if !strings.Contains(html, "2026-03-08 (9)") {
		t.Error("9-hole rounds not labeled on the axis")
	}
}

func TestRenderScoreTrendEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderScoreTrend(&buf, nil, DefaultConfig()); err != nil {
		t.Fatalf("RenderScoreTrend with no rounds: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("no output for empty round list")
	}
}
