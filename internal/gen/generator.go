package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"resultgen/internal/plan"
)

// GeneratorConfig tunes artifact emission.
type GeneratorConfig struct {
	// FileSuffix terminates every artifact name so generated files are
	// recognizable and ignorable in bulk.
	FileSuffix string

	// DebugUnformatted writes the raw template output of any artifact
	// that fails gofmt next to the intended output, for inspection.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the config used by the CLI.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{FileSuffix: "_gen.go"}
}

// GeneratedFile is one emitted artifact, addressed to the directory of
// the package that declares its schema.
type GeneratedFile struct {
	Dir      string
	Filename string
	Content  []byte
}

// Generator renders resolved schemas into gofmt-formatted source files.
type Generator struct {
	config GeneratorConfig
}

func NewGenerator(config GeneratorConfig) *Generator {
	if config.FileSuffix == "" {
		config.FileSuffix = DefaultGeneratorConfig().FileSuffix
	}

	return &Generator{config: config}
}

// Generate renders every schema in the plan. Output is deterministic:
// schemas render in plan order and the support artifact is emitted once
// per output directory, before the first schema that needs it.
func (g *Generator) Generate(p *plan.ResolvedPlan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, 3*len(p.Schemas))
	supportDone := map[string]bool{}

	for i := range p.Schemas {
		rs := &p.Schemas[i]
		if !rs.GenerateInternal && !rs.GeneratePublic {
			continue
		}

		if !supportDone[rs.Schema.Dir] {
			file, err := g.render(supportTemplate, rs.Schema.Dir,
				supportFilename(g.config.FileSuffix),
				supportTemplateData{PackageName: rs.Schema.PkgName})
			if err != nil {
				return nil, fmt.Errorf("generating support for %s: %w", rs.Schema.ID, err)
			}

			files = append(files, file)
			supportDone[rs.Schema.Dir] = true
		}

		file, err := g.render(resultsTemplate, rs.Schema.Dir,
			resultsFilename(rs.Schema.ID.Name, g.config.FileSuffix),
			buildResultsData(rs))
		if err != nil {
			return nil, fmt.Errorf("generating results for %s: %w", rs.Schema.ID, err)
		}

		files = append(files, file)

		if !rs.IncludeProtocol {
			continue
		}

		file, err = g.render(protocolTemplate, rs.Schema.Dir,
			protocolFilename(rs.Schema.ID.Name, g.config.FileSuffix),
			buildProtocolData(rs))
		if err != nil {
			return nil, fmt.Errorf("generating protocol for %s: %w", rs.Schema.ID, err)
		}

		files = append(files, file)
	}

	return files, nil
}

func (g *Generator) render(tmpl *template.Template, dir, filename string, data any) (GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			writeDebugUnformatted(dir, filename, buf.Bytes())
		}

		return GeneratedFile{}, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return GeneratedFile{Dir: dir, Filename: filename, Content: formatted}, nil
}
