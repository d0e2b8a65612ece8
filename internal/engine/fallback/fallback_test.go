package fallback

import (
	"testing"

	"github.com/crimson-sun/modelscout/internal/catalog"
	"github.com/crimson-sun/modelscout/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	taxonomy := `
categories:
  - name: computer_vision
    subcategories:
      - name: image_classification
        keywords: ["image classification", "classify images"]
        examples:
          - classify product images into categories
      - name: object_detection
        keywords: ["object detection", "bounding boxes"]
        examples:
          - detect and locate objects in photos
  - name: audio
    subcategories:
      - name: speech_recognition
        keywords: ["speech recognition", "transcribe"]
        examples:
          - transcribe recorded customer calls
`
	c, err := catalog.Parse([]byte(taxonomy), []byte("models: []"))
	if err != nil {
		t.Fatalf("catalog.Parse: %v", err)
	}
	return c
}

func TestJaccardStageMatchesCloseParaphrase(t *testing.T) {
	c := New(testCatalog(t))

	res := c.Classify("classify product images into some categories")
	want := model.Label{Category: "computer_vision", Subcategory: "image_classification"}
	if res.Label != want {
		t.Fatalf("label = %v, want %v", res.Label, want)
	}
	if res.Confidence < JaccardThreshold {
		t.Errorf("confidence = %v, want >= %v", res.Confidence, JaccardThreshold)
	}
}

func TestContainmentBoost(t *testing.T) {
	c := New(testCatalog(t))

	// Exact example text embedded in a longer query: containment boost
	// should push it over the threshold.
	res := c.Classify("please transcribe recorded customer calls for me")
	want := model.Label{Category: "audio", Subcategory: "speech_recognition"}
	if res.Label != want {
		t.Fatalf("label = %v, want %v", res.Label, want)
	}
}

func TestNGramStageMatchesKeywords(t *testing.T) {
	c := New(testCatalog(t))

	// No example text overlaps enough for Jaccard, but "bounding boxes" is
	// an indexed keyword phrase.
	res := c.Classify("draw bounding boxes around every car")
	want := model.Label{Category: "computer_vision", Subcategory: "object_detection"}
	if res.Label != want {
		t.Fatalf("label = %v, want %v", res.Label, want)
	}
	if res.Confidence <= 0 || res.Confidence > 1 {
		t.Errorf("confidence = %v, want in (0, 1]", res.Confidence)
	}
}

func TestExactKeywordBeatsPartialTokens(t *testing.T) {
	c := New(testCatalog(t))

	// "speech recognition" is an exact keyword for audio; "images" alone is
	// partial evidence for vision. The exact phrase must dominate.
	res := c.Classify("speech recognition for images")
	want := model.Label{Category: "audio", Subcategory: "speech_recognition"}
	if res.Label != want {
		t.Fatalf("label = %v, want %v", res.Label, want)
	}
}

func TestPriorityFallbackIsDeterministic(t *testing.T) {
	c := New(testCatalog(t))

	first := c.Classify("xylophone quantum blockchain")
	want := model.Label{Category: "computer_vision", Subcategory: "image_classification"}
	if first.Label != want {
		t.Fatalf("label = %v, want first catalog label %v", first.Label, want)
	}
	if first.Confidence != PriorityConfidence {
		t.Errorf("confidence = %v, want %v", first.Confidence, PriorityConfidence)
	}
	for i := 0; i < 5; i++ {
		if got := c.Classify("xylophone quantum blockchain"); got.Label != first.Label {
			t.Fatal("priority fallback is not deterministic")
		}
	}
	if len(first.Breakdown) == 0 {
		t.Error("priority fallback should still report candidate labels")
	}
}

func TestNeverFails(t *testing.T) {
	c := New(testCatalog(t))
	for _, q := range []string{"", "   ", "!!!", "a", "葡萄牙語"} {
		res := c.Classify(q)
		if res.Label.Category == "" {
			t.Errorf("Classify(%q) returned empty label", q)
		}
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("Classify(%q) confidence = %v", q, res.Confidence)
		}
	}
}

func TestBreakdownRankedForClarification(t *testing.T) {
	c := New(testCatalog(t))
	res := c.Classify("classify images of speech")
	if len(res.Breakdown) < 2 {
		t.Fatalf("expected multiple candidates, got %v", res.Breakdown)
	}
	for i := 1; i < len(res.Breakdown); i++ {
		if res.Breakdown[i].Weight > res.Breakdown[i-1].Weight {
			t.Fatal("breakdown not sorted by weight descending")
		}
	}
}
