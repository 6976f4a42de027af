package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_EmptyQuery(t *testing.T) {
	assert.Empty(t, Suggest(""))
}

func TestSuggest_Java(t *testing.T) {
	got := Suggest("java")

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), MaxSuggestions)
	for _, s := range got {
		assert.Contains(t, strings.ToLower(s), "java")
	}
	assert.Equal(t, []string{"JavaScript", "Java"}, got)
}

func TestSuggest_PreservesDictionaryOrder(t *testing.T) {
	got := Suggest("pyt")
	assert.Equal(t, []string{"Python", "PyTest", "PyTorch"}, got)
}

func TestSuggest_CapsAtFive(t *testing.T) {
	got := Suggest("a")
	assert.Len(t, got, MaxSuggestions)
	assert.Equal(t, []string{"JavaScript", "Java", "Scala", "MATLAB", "React"}, got)
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Suggest("docker"), Suggest("DOCKER"))
	assert.Equal(t, []string{"Docker"}, Suggest("dOcKeR"))
}

func TestSuggest_NoMatch(t *testing.T) {
	assert.Empty(t, Suggest("cobol"))
}

func TestDictionary_IsACopy(t *testing.T) {
	d := Dictionary()
	require.NotEmpty(t, d)
	d[0] = "changed"
	assert.Equal(t, "JavaScript", Dictionary()[0])
	assert.Greater(t, len(d), 140)
}
