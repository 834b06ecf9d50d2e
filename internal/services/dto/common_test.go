package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_AcceptsArray(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`["Go","SQL","Docker"]`), &s))
	assert.Equal(t, StringList{"Go", "SQL", "Docker"}, s)
}

func TestStringList_AcceptsCSVString(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`"Go, SQL , Docker"`), &s))
	assert.Equal(t, StringList{"Go", "SQL", "Docker"}, s)
}

func TestStringList_DropsEmptyItems(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`"Go,, ,SQL"`), &s))
	assert.Equal(t, StringList{"Go", "SQL"}, s)
}

func TestStringList_RejectsNonString(t *testing.T) {
	var s StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}
