package protocol

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const labProtocol = "Add 50 buffer to the flask. " +
	"Incubate at 37°C for 2 hours then spin in the centrifuge for 10 minutes. " +
	"Measure the volume and record the temperature."

func newTestService() *Service {
	return NewService(slog.Default())
}

func TestService_Parse_ExtractsEntities(t *testing.T) {
	svc := newTestService()

	res, err := svc.Parse(context.Background(), ParseRequest{
		Text:            labProtocol,
		ExtractEntities: true,
	})

	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, 0.85, res.ConfidenceScore, 1e-9)
	assert.Nil(t, res.SOPCompliant)

	byType := map[string][]Entity{}
	for _, e := range res.Entities {
		byType[e.Type] = append(byType[e.Type], e)
	}

	require.Len(t, byType[EntityReagent], 1)
	reagent := byType[EntityReagent][0]
	assert.Equal(t, "50 buffer", reagent.Text)
	assert.Equal(t, "50", reagent.Metadata["quantity"])
	assert.Equal(t, 4, reagent.Start)
	assert.Equal(t, 13, reagent.End)

	require.Len(t, byType[EntityEquipment], 2)
	assert.Equal(t, "flask", byType[EntityEquipment][0].Text)
	assert.Equal(t, "centrifuge", byType[EntityEquipment][1].Text)

	require.Len(t, byType[EntityCondition], 3)
	assert.Equal(t, "37°C", byType[EntityCondition][0].Text)
	assert.Equal(t, "2 hours", byType[EntityCondition][1].Text)
	assert.Equal(t, "10 minutes", byType[EntityCondition][2].Text)
}

func TestService_Parse_StructuredData(t *testing.T) {
	svc := newTestService()

	res, err := svc.Parse(context.Background(), ParseRequest{
		Text:            labProtocol,
		ExtractEntities: true,
	})

	require.NoError(t, err)
	require.NotNil(t, res.Structured)

	st := res.Structured
	require.Len(t, st.Reagents, 1)
	assert.Equal(t, "50 buffer", st.Reagents[0].Name)
	assert.Equal(t, "50", st.Reagents[0].Quantity)

	assert.Equal(t, []string{"flask", "centrifuge"}, st.Equipment)

	assert.Equal(t, "37°C", st.Conditions["temperature"])
	// Later time mentions overwrite earlier ones.
	assert.Equal(t, "10 minutes", st.Conditions["time"])

	require.Len(t, st.Steps, 3)
	assert.Equal(t, "Add 50 buffer to the flask", st.Steps[0])
	assert.Equal(t, "Measure the volume and record the temperature", st.Steps[2])
}

func TestService_Parse_SOPCompliance(t *testing.T) {
	svc := newTestService()

	res, err := svc.Parse(context.Background(), ParseRequest{
		Text:        labProtocol,
		ValidateSOP: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.SOPCompliant)
	assert.True(t, *res.SOPCompliant)

	res, err = svc.Parse(context.Background(), ParseRequest{
		Text:        "Mix the sample thoroughly.",
		ValidateSOP: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.SOPCompliant)
	assert.False(t, *res.SOPCompliant)
}

func TestService_Parse_WithoutExtractionFlag(t *testing.T) {
	svc := newTestService()

	res, err := svc.Parse(context.Background(), ParseRequest{Text: labProtocol})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Entities)
	assert.Nil(t, res.Structured)
	assert.Nil(t, res.SOPCompliant)
}

func TestService_Parse_EmptyText(t *testing.T) {
	svc := newTestService()

	res, err := svc.Parse(context.Background(), ParseRequest{
		Text:            "   ",
		ExtractEntities: true,
	})

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Zero(t, res.ConfidenceScore)
	assert.Contains(t, res.Warnings, "empty protocol text")
}

func TestService_Parse_ReagentNeedsQuantity(t *testing.T) {
	svc := newTestService()

	res, err := svc.Parse(context.Background(), ParseRequest{
		Text:            "Wash the buffer thoroughly before use.",
		ExtractEntities: true,
	})

	require.NoError(t, err)
	for _, e := range res.Entities {
		assert.NotEqual(t, EntityReagent, e.Type)
	}
}

func TestService_Classify(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name       string
		text       string
		wantType   string
		confidence float64
	}{
		{
			name:       "extraction",
			text:       "Extract the DNA and purify the product",
			wantType:   "extraction",
			confidence: 2.0 / 3.0,
		},
		{
			name:       "analysis",
			text:       "Measure and quantify the concentration, then analyze the spectrum",
			wantType:   "analysis",
			confidence: 1.0,
		},
		{
			name:       "synthesis",
			text:       "Prepare the solution and let it react overnight",
			wantType:   "synthesis",
			confidence: 2.0 / 3.0,
		},
		{
			name:       "unknown",
			text:       "Leave the plate on the bench",
			wantType:   "unknown",
			confidence: 0,
		},
		{
			name:       "tie breaks toward extraction",
			text:       "extract then analyze",
			wantType:   "extraction",
			confidence: 1.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
			assert.Len(t, got.Scores, 3)
		})
	}
}

func TestService_ExtractMetadata(t *testing.T) {
	service := newTestService()

	meta := service.ExtractMetadata(context.Background(), "Collected 25 ml on 2024-03-15 and 3.5 mg more on 4/2/24")

	assert.Equal(t, []string{"2024-03-15", "4/2/24"}, meta["dates"])
	assert.Equal(t, []string{"25 ml", "3.5 mg"}, meta["quantities"])

	empty := service.ExtractMetadata(context.Background(), "no measurements recorded")
	assert.Empty(t, empty["dates"])
	assert.Empty(t, empty["quantities"])
}
