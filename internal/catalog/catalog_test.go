// PrintForge - 3D Printer Component Installer
// Copyright (C) 2026 PrintForge Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package catalog

import (
	"reflect"
	"testing"
)

func TestDefaults_FreshCopy(t *testing.T) {
	first := Defaults()
	first[0].Selected = !first[0].Selected
	first[0].Name = "mutated"

	second := Defaults()
	if second[0].Name == "mutated" {
		t.Error("Defaults() returned a shared slice, mutation leaked into second copy")
	}
	if second[0].Selected == first[0].Selected {
		t.Error("Defaults() did not reset selection state")
	}
}

func TestDefaults_GroupedByCategory(t *testing.T) {
	// Each category must occupy one contiguous run so the menu shows a
	// single header per group.
	seen := make(map[string]bool)
	last := ""
	for _, c := range Defaults() {
		if c.Category == last {
			continue
		}
		if seen[c.Category] {
			t.Errorf("category %q appears in two separate runs", c.Category)
		}
		seen[c.Category] = true
		last = c.Category
	}
}

func TestSlugs_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Slugs() {
		if seen[s] {
			t.Errorf("duplicate slug %q in catalog", s)
		}
		seen[s] = true
	}
}

func TestDefaultSelections(t *testing.T) {
	want := []string{
		"guppyscreen",
		"mainsail",
		"ustreamer",
		"timelapse",
		"macros",
		"resonance",
		"shaketune",
		"cleanup",
	}
	got := SelectedSlugs(Defaults())
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedSlugs(Defaults()) = %v, want %v", got, want)
	}
}

func TestFind(t *testing.T) {
	c, ok := Find("mainsail")
	if !ok {
		t.Fatal("Find(mainsail) not found")
	}
	if c.Name != "Mainsail" {
		t.Errorf("Find(mainsail).Name = %q, want %q", c.Name, "Mainsail")
	}

	if _, ok := Find("nonsense"); ok {
		t.Error("Find(nonsense) reported found")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		slugs   []string
		wantErr bool
	}{
		{"empty", nil, false},
		{"single", []string{"mainsail"}, false},
		{"several", []string{"guppyscreen", "kamp", "cleanup"}, false},
		{"all", Slugs(), false},
		{"unknown", []string{"mainsail", "octoprint"}, true},
		{"duplicate", []string{"mainsail", "mainsail"}, true},
	}
	for _, tc := range tests {
		err := Validate(tc.slugs)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate(%v) error = %v, wantErr %v", tc.name, tc.slugs, err, tc.wantErr)
		}
	}
}

func TestSelectedSlugs_AllSelected(t *testing.T) {
	components := Defaults()
	for i := range components {
		components[i].Selected = true
	}
	got := SelectedSlugs(components)
	if !reflect.DeepEqual(got, Slugs()) {
		t.Errorf("SelectedSlugs with everything selected = %v, want catalog order %v", got, Slugs())
	}
}

func TestSelectedSlugs_NoneSelected(t *testing.T) {
	components := Defaults()
	for i := range components {
		components[i].Selected = false
	}
	if got := SelectedSlugs(components); len(got) != 0 {
		t.Errorf("SelectedSlugs with nothing selected = %v, want empty", got)
	}
}
