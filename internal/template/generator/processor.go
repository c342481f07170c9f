package generator

import (
	"bytes"
	"path"
	"slices"
	"strings"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/engine"
	"github.com/tacogips/scaffold/internal/template/model"
)

// Processor renders the content of individual files during generation.
type Processor interface {
	// Process returns the content to write for the file at rel.
	// Binary content is returned unchanged.
	Process(rel string, content []byte, ctx model.Context) ([]byte, error)

	// ShouldProcess reports whether the file is rendered as a template.
	ShouldProcess(rel string, content []byte) bool
}

// FileProcessor implements Processor with an engine.Engine.
type FileProcessor struct {
	engine           engine.Engine
	binaryExtensions []string
}

// NewFileProcessor creates a new FileProcessor.
// binaryExtensions is a list of lower-case extensions that are never rendered.
func NewFileProcessor(e engine.Engine, binaryExtensions []string) *FileProcessor {
	if binaryExtensions == nil {
		binaryExtensions = DefaultBinaryExtensions()
	}
	return &FileProcessor{
		engine:           e,
		binaryExtensions: binaryExtensions,
	}
}

// DefaultBinaryExtensions returns the extensions copied verbatim by default.
func DefaultBinaryExtensions() []string {
	return []string{
		// Images
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".webp",
		// Archives
		".zip", ".tar", ".gz", ".bz2", ".xz", ".rar", ".7z", ".jar",
		// Executables
		".exe", ".dll", ".so", ".dylib", ".bin", ".wasm",
		// Media
		".mp3", ".mp4", ".avi", ".mov", ".wav",
		// Documents
		".pdf", ".doc", ".docx", ".xls", ".xlsx",
		// Fonts
		".ttf", ".otf", ".woff", ".woff2", ".eot",
	}
}

// ShouldProcess returns false if:
// - the extension is a binary extension
// - the content contains a NUL byte in its first 512 bytes
func (p *FileProcessor) ShouldProcess(rel string, content []byte) bool {
	ext := strings.ToLower(path.Ext(rel))
	if slices.Contains(p.binaryExtensions, ext) {
		return false
	}
	return !isBinaryContent(content)
}

func isBinaryContent(content []byte) bool {
	checkLen := min(len(content), 512)
	return bytes.IndexByte(content[:checkLen], 0) != -1
}

// Process implements Processor.
func (p *FileProcessor) Process(rel string, content []byte, ctx model.Context) ([]byte, error) {
	if !p.ShouldProcess(rel, content) {
		debug.Debug("[generator] Copying binary file verbatim: %s (size: %d bytes)", rel, len(content))
		return content, nil
	}
	if !engine.HasActions(string(content)) {
		return content, nil
	}

	out, err := p.engine.Render(rel, string(content), ctx)
	if err != nil {
		return nil, newGeneratorError(GeneratorContentRender, "failed to render file", rel, err)
	}
	debug.Debug("[generator] Rendered %s (input: %d bytes, output: %d bytes)", rel, len(content), len(out))
	return []byte(out), nil
}
