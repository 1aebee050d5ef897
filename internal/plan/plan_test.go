package plan

import (
	"reflect"
	"testing"

	"mensa-ukon/internal/icon"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Key 1":   "key_1",
		"key_1":   "key_1",
		" KeY 2 ": "key_2",
		"":        "",
		"  ":      "",
		"Wok":     "wok",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDayPlanOrderAndOverwrite(t *testing.T) {
	dp := NewDayPlan()
	dp.Set(MealRecord{Key: "wok", Category: "Wok", Description: "first"})
	dp.Set(MealRecord{Key: "grill", Category: "Grill", Description: "lamb", Icons: []icon.Icon{icon.Lamb}})
	dp.Set(MealRecord{Key: "wok", Category: "Wok", Description: "second"})

	if dp.Len() != 2 {
		t.Fatalf("Len = %d, want 2", dp.Len())
	}
	// later entry overwrites but keeps the original position
	if !reflect.DeepEqual(dp.Keys(), []string{"wok", "grill"}) {
		t.Errorf("Keys = %v", dp.Keys())
	}
	rec, ok := dp.Get("wok")
	if !ok || rec.Description != "second" {
		t.Errorf("Get(wok) = (%+v, %v)", rec, ok)
	}

	records := dp.Records()
	if len(records) != 2 || records[0].Key != "wok" || records[1].Key != "grill" {
		t.Errorf("Records = %+v", records)
	}

	if _, ok := dp.Get("stammessen"); ok {
		t.Error("Get of absent key reported ok")
	}
}

func TestPlanFound(t *testing.T) {
	if (Plan{}).Found() {
		t.Error("Plan without meals reported found")
	}
	p := Plan{Meals: NewDayPlan()}
	if !p.Found() {
		t.Error("Plan with empty day not reported found; empty and absent must differ")
	}
}
