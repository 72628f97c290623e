package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/opsdeck/opsdeck/internal/config"
	"github.com/opsdeck/opsdeck/internal/model"
	"github.com/opsdeck/opsdeck/internal/shape"
	"github.com/spf13/cobra"
)

func ClassifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify the shape of a JSON response payload",
		RunE:  runClassify,
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "JSON payload file path")
	flags.String("title", "", "Passthrough title for the renderer")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return fmt.Errorf("input file is required")
	}
	title, _ := cmd.Flags().GetString("title")

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading payload file: %w", err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	detector := shape.NewDetector()
	if cfg.SampleSize > 0 {
		detector.SampleSize = cfg.SampleSize
	}
	classified := detector.Classify(payload, nil, title)

	slog.Info("payload classified",
		"shape", string(classified.Shape),
		"items", len(classified.Items))

	return emit(cmd.OutOrStdout(), classifiedView(classified), cfg.Output)
}

type classifiedDataView struct {
	Shape     string     `json:"shape" yaml:"shape"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Fields    fieldsView `json:"fields" yaml:"fields"`
	ItemCount int        `json:"itemCount" yaml:"itemCount"`
}

type fieldsView struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Date        string   `json:"date,omitempty" yaml:"date,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Actor       string   `json:"actor,omitempty" yaml:"actor,omitempty"`
	Metrics     []string `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	All         []string `json:"all,omitempty" yaml:"all,omitempty"`
}

func classifiedView(c model.ClassifiedData) classifiedDataView {
	return classifiedDataView{
		Shape:     string(c.Shape),
		Title:     c.Title,
		ItemCount: len(c.Items),
		Fields: fieldsView{
			ID:          c.Fields.ID,
			Date:        c.Fields.Date,
			Description: c.Fields.Description,
			Type:        c.Fields.Type,
			Actor:       c.Fields.Actor,
			Metrics:     c.Fields.Metrics,
			All:         c.Fields.All,
		},
	}
}
