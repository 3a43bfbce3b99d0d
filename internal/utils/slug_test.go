// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Lampe à poser":         "lampe-a-poser",
		"Éclairage LED":         "eclairage-led",
		"  Coussin -- Velours ": "coussin-velours",
		"Œuvre d'art":           "oeuvre-d-art",
		"Déco & Co":             "deco-co",
		"vente_flash @ minuit":  "vente-flash-minuit",
		"L’Atelier":             "l-atelier",
		"straße":                "strasse",
		"":                      "",
		"---":                   "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Lampe à poser", "Tapis berbère 200x300", "Déco & Co"}
	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestIsCategorySlug(t *testing.T) {
	assert.True(t, IsCategorySlug("luminaires"))
	assert.True(t, IsCategorySlug("deco-murale-2"))
	assert.False(t, IsCategorySlug(""))
	assert.False(t, IsCategorySlug("Luminaires"))
	assert.False(t, IsCategorySlug("déco"))
	assert.False(t, IsCategorySlug("a b"))
	assert.False(t, IsCategorySlug("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")) // 41 chars
}

func TestUniqueSlug(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "lampe", UniqueSlug("lampe", used))

	used = map[string]bool{"lampe": true}
	assert.Equal(t, "lampe-2", UniqueSlug("lampe", used))

	// The next free suffix is found even with gaps claimed.
	used = map[string]bool{"a": true, "a-2": true}
	assert.Equal(t, "a-3", UniqueSlug("a", used))
}

func TestAssignSlugsSequentialFold(t *testing.T) {
	records := []SlugRecord{
		{ID: "id1", Name: "Lampe"},
		{ID: "id2", Name: "Lampe"},
		{ID: "id3", Name: "Lampe"},
	}
	assigned := AssignSlugs(records, nil)

	assert.Equal(t, "lampe", assigned["id1"])
	assert.Equal(t, "lampe-2", assigned["id2"])
	assert.Equal(t, "lampe-3", assigned["id3"])
}

func TestAssignSlugsKeepsOwnSlug(t *testing.T) {
	// A record whose current slug already matches its name keeps it
	// instead of being bumped to -2 by its own entry in the used set.
	records := []SlugRecord{
		{ID: "id1", Name: "Lampe", Current: "lampe"},
	}
	used := map[string]bool{"lampe": true}
	assigned := AssignSlugs(records, used)

	assert.Equal(t, "lampe", assigned["id1"])
}

func TestAssignSlugsCollisionWithOtherRecord(t *testing.T) {
	records := []SlugRecord{
		{ID: "id1", Name: "Lampe", Current: "vieille-lampe"},
	}
	// Another record owns "lampe" already.
	used := map[string]bool{"lampe": true, "vieille-lampe": true}
	assigned := AssignSlugs(records, used)

	assert.Equal(t, "lampe-2", assigned["id1"])
}

func TestAssignSlugsEmptyNameFallsBackToID(t *testing.T) {
	records := []SlugRecord{
		{ID: "abc123abc123abc", Name: "---"},
	}
	assigned := AssignSlugs(records, nil)

	assert.Equal(t, "abc123abc123abc", assigned["abc123abc123abc"])
}
