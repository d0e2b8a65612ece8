package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/crimson-sun/modelscout/internal/engine"
	"github.com/crimson-sun/modelscout/internal/model"
	"github.com/crimson-sun/modelscout/internal/selector"
)

func testGrouped() selector.Grouped {
	s := selector.New([]model.Model{
		{ID: "tiny", SizeMB: 10, Tier: model.TierLightweight, Accuracy: 0.7,
			Deployment:  []model.Deployment{model.DeployBrowser},
			Category:    "computer_vision", Subcategory: "image_classification"},
		{ID: "mid", SizeMB: 1500, Tier: model.TierStandard,
			Deployment:  []model.Deployment{model.DeployCloud},
			Category:    "computer_vision", Subcategory: "image_classification"},
	})
	return s.GroupedByTier("computer_vision", "image_classification", 0, "")
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Errorf("ParseFormat(ndjson) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteGroupedNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGrouped(&buf, FormatNDJSON, testGrouped()); err != nil {
		t.Fatalf("WriteGrouped: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []modelRecord
	for scanner.Scan() {
		var rec modelRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("invalid NDJSON line: %v", err)
		}
		lines = append(lines, rec)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].ID != "tiny" || lines[0].Tier != "lightweight" || lines[0].Footprint != "minimal" {
		t.Errorf("first line = %+v", lines[0])
	}
	// "mid" has no reported accuracy; the field must be omitted, not zero.
	if strings.Contains(buf.String(), `"accuracy":0`) {
		t.Error("zero accuracy should be omitted from NDJSON")
	}
}

func TestWriteGroupedText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGrouped(&buf, FormatText, testGrouped()); err != nil {
		t.Fatalf("WriteGrouped: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"computer_vision/image_classification", "tiny", "mid", "shown 2, hidden 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOutcomeClarification(t *testing.T) {
	o := engine.Outcome{
		Status: engine.StatusNeedsClarification,
		Result: model.Result{
			Label:      model.Label{Category: "computer_vision", Subcategory: "image_classification"},
			Confidence: 0.44,
		},
		Source: engine.SourceEmbedding,
		Candidates: []model.Label{
			{Category: "computer_vision", Subcategory: "image_classification"},
			{Category: "audio", Subcategory: "speech_recognition"},
		},
	}

	var buf bytes.Buffer
	if err := WriteOutcome(&buf, FormatText, o); err != nil {
		t.Fatalf("WriteOutcome: %v", err)
	}
	if !strings.Contains(buf.String(), "did you mean") {
		t.Errorf("clarification output missing candidates:\n%s", buf.String())
	}

	buf.Reset()
	if err := WriteOutcome(&buf, FormatNDJSON, o); err != nil {
		t.Fatalf("WriteOutcome ndjson: %v", err)
	}
	var rec outcomeRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid NDJSON: %v", err)
	}
	if rec.Status != "needs-clarification" || len(rec.Candidates) != 2 {
		t.Errorf("record = %+v", rec)
	}
}
