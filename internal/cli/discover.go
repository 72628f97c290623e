package cli

import (
	"fmt"
	"log/slog"

	"github.com/opsdeck/opsdeck/internal/config"
	"github.com/opsdeck/opsdeck/internal/discovery"
	"github.com/opsdeck/opsdeck/internal/loader"
	"github.com/opsdeck/opsdeck/internal/model"
	"github.com/spf13/cobra"
)

func DiscoverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Parse a product description into a navigable resource model",
		RunE:  runDiscover,
	}

	flags := cmd.Flags()
	flags.StringP("spec", "s", "", "API description file path")
	flags.String("base-url", "", "Product base address, source of the admin prefix")
	flags.String("product", "", "Product identifier")

	return cmd
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}
	if cfg.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		slog.Warn("description validation", "warning", w)
	}

	doc, err := loader.Transform(result)
	if err != nil {
		return err
	}

	spec, err := discovery.Discover(doc, cfg.BaseURL, cfg.Product)
	if err != nil {
		return err
	}

	slog.Info("discovery complete",
		"product", spec.Product,
		"prefix", spec.AdminPrefix,
		"operations", spec.OperationCount(),
		"resources", len(spec.Resources))

	return emit(cmd.OutOrStdout(), specView(spec), cfg.Output)
}

// Views keep CLI output navigable; resolved schemas can be cyclic and
// stay out of the serialized form.

type parsedSpecView struct {
	Product     string          `json:"product,omitempty" yaml:"product,omitempty"`
	AdminPrefix string          `json:"adminPrefix" yaml:"adminPrefix"`
	Title       string          `json:"title,omitempty" yaml:"title,omitempty"`
	Resources   []resourceView  `json:"resources" yaml:"resources"`
	Operations  []operationView `json:"operations" yaml:"operations"`
}

type resourceView struct {
	Key              string          `json:"key" yaml:"key"`
	Name             string          `json:"name" yaml:"name"`
	RequiresParentID bool            `json:"requiresParentId" yaml:"requiresParentId"`
	Operations       []operationView `json:"operations,omitempty" yaml:"operations,omitempty"`
	Children         []resourceView  `json:"children,omitempty" yaml:"children,omitempty"`
}

type operationView struct {
	ID         string   `json:"id" yaml:"id"`
	Type       string   `json:"type" yaml:"type"`
	Method     string   `json:"method" yaml:"method"`
	Path       string   `json:"path" yaml:"path"`
	PathParams []string `json:"pathParams,omitempty" yaml:"pathParams,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func specView(spec *model.ParsedSpec) parsedSpecView {
	view := parsedSpecView{
		Product:     spec.Product,
		AdminPrefix: spec.AdminPrefix,
		Title:       spec.Info.Title,
		Operations:  operationViews(spec.Operations),
	}
	for _, r := range spec.Resources {
		view.Resources = append(view.Resources, newResourceView(r))
	}
	return view
}

func newResourceView(r *model.Resource) resourceView {
	view := resourceView{
		Key:              r.Key,
		Name:             r.Name,
		RequiresParentID: r.RequiresParentID,
		Operations:       operationViews(r.Operations),
	}
	for _, c := range r.Children {
		view.Children = append(view.Children, newResourceView(c))
	}
	return view
}

func operationViews(ops []model.Operation) []operationView {
	var views []operationView
	for _, op := range ops {
		views = append(views, operationView{
			ID:         op.ID,
			Type:       string(op.Type),
			Method:     string(op.Method),
			Path:       op.Path,
			PathParams: op.PathParams,
			Summary:    op.Summary,
		})
	}
	return views
}
