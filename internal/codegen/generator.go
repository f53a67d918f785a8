package codegen

import (
	"fmt"

	"github.com/kolah/wilbur/internal/config"
	"github.com/kolah/wilbur/internal/emitter"
	"github.com/kolah/wilbur/internal/engine"
	"github.com/kolah/wilbur/internal/model"
	embeddedtmpl "github.com/kolah/wilbur/templates"
)

type Generator struct {
	config *config.Config
	engine emitter.Engine
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) (*Generator, error) {
	eng, err := emitter.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, nil)
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: eng,
	}, nil
}

// Generate builds the client model for a transformed spec and renders
// it as a single formatted source file.
func (g *Generator) Generate(spec *model.Spec) ([]Output, error) {
	m, err := engine.Build(spec, engine.Options{
		ClientName:        g.config.Client.Name,
		UseParamStructs:   g.config.Client.ParamStructs,
		StructAnnotations: g.config.Client.Annotations,
		Middleware:        g.config.Client.Middleware,
	})
	if err != nil {
		return nil, fmt.Errorf("building client model: %w", err)
	}

	content, err := emitter.Emit(g.engine, m, g.config.Go.Package)
	if err != nil {
		return nil, fmt.Errorf("generating client: %w", err)
	}

	formatted, err := emitter.Format([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("formatting client: %w", err)
	}

	return []Output{{
		Filename: "client.go",
		Content:  string(formatted),
	}}, nil
}
