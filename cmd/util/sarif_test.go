package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotLoopReport(t *testing.T) {
	sf, g := loadDemo(t)
	sorted := SortLoopsUsingProfileData(g, sf, sf.FindLoopsInAST())
	loops := FilterLoopsUsingProfileData(sorted, 0)

	report, err := NewHotLoopReport(sf, loops, g)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "hot.sarif")
	require.NoError(t, WriteSarifFile(report, out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Results []struct {
				RuleID  string `json:"ruleId"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
				Locations []struct {
					PhysicalLocation struct {
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	require.Len(t, doc.Runs[0].Results, 3)

	first := doc.Runs[0].Results[0]
	assert.Equal(t, HotLoopRule, first.RuleID)
	assert.Equal(t, "range loop at line 5 accounts for 95.00% of 100ns cpu (10ns in the loop itself)", first.Message.Text)
	require.Len(t, first.Locations, 1)
	assert.Equal(t, 5, first.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestWriteSarifFileBadPath(t *testing.T) {
	sf, g := loadDemo(t)
	report, err := NewHotLoopReport(sf, nil, g)
	require.NoError(t, err)
	assert.Error(t, WriteSarifFile(report, filepath.Join(t.TempDir(), "missing", "x.sarif")))
}
