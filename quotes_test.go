package zainetto

import (
	"encoding/json"
	"testing"
)

func TestJsonFloat(t *testing.T) {
	var jobj any
	doc := `{"chart":{"result":[{"meta":{"regularMarketPrice":123.45}}]}}`
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatal(err)
	}

	got, err := jsonFloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		t.Fatalf("jsonFloat error: %v", err)
	}
	if want := 123.45; got != want {
		t.Errorf("jsonFloat got %v, want %v", got, want)
	}
}

func TestJsonFloatListOfOne(t *testing.T) {
	// Slice-style paths come back as a list of one answer.
	var jobj any
	doc := `{"series":{"intraday":{"data":[[1,10.5],[2,11.5]]}}}`
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatal(err)
	}

	got, err := jsonFloat(jobj, "$.series.intraday.data[-1:][1]")
	if err != nil {
		t.Fatalf("jsonFloat error: %v", err)
	}
	if want := 11.5; got != want {
		t.Errorf("jsonFloat got %v, want %v", got, want)
	}
}

func TestJsonFloatNotANumber(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"price":"n/a"}`), &jobj); err != nil {
		t.Fatal(err)
	}
	if _, err := jsonFloat(jobj, "$.price"); err == nil {
		t.Error("jsonFloat should fail on a string value")
	}
}
