package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/kamil-urbanek/docpipe/constants"
)

const extractorSystemPrompt = "You are a document data extractor for legal case files. Your task is to read a scanned document and extract its named fields. You must output your response as a single valid JSON object."

const extractorUserPrompt = `Read the attached document and extract every identifiable field into a flat JSON object.

Follow these rules precisely:
1. Keys are lowercase snake_case field names (e.g. "first_name", "last_name", "birth_date", "birth_place", "document_number").
2. Values are strings, transcribed exactly as printed. Dates use YYYY-MM-DD where the document makes the format unambiguous.
3. Omit fields you cannot read; never guess.
4. Include a "full_text" key holding the complete transcribed text of the document.
5. The output MUST be a single valid JSON object with no text before or after it.`

// VertexExtractor extracts document fields with a Vertex AI vision model.
type VertexExtractor struct {
	model  *genai.GenerativeModel
	client *genai.Client
	logger *slog.Logger
}

func NewVertexExtractor(ctx context.Context, projectID, region, modelName string, logger *slog.Logger) (*VertexExtractor, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexExtractor: projectID and region cannot be empty")
	}
	client, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(extractorSystemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}

	return &VertexExtractor{model: model, client: client, logger: logger}, nil
}

func (e *VertexExtractor) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

func (e *VertexExtractor) Extract(ctx context.Context, content []byte, fileExt string) (Result, error) {
	if constants.MapExtToFormat(fileExt) == "" {
		return Result{}, fmt.Errorf("extension %q: %w", fileExt, ErrUnsupportedFormat)
	}

	filePart := genai.Blob{MIMEType: constants.MimeTypeForExt(fileExt), Data: content}
	resp, err := e.model.GenerateContent(ctx, filePart, genai.Text(extractorUserPrompt))
	if err != nil {
		return Result{}, fmt.Errorf("vertex generate content: %w", err)
	}

	raw := collectText(resp)
	if raw == "" {
		return Result{}, fmt.Errorf("vertex returned an empty response")
	}

	fields := map[string]string{}
	if err := json.Unmarshal([]byte(stripFences(raw)), &fields); err != nil {
		e.logger.Warn("extraction response was not valid JSON", "error", err, "bytes", len(raw))
		return Result{}, fmt.Errorf("decode extraction response: %w", err)
	}

	return Result{Fields: fields, Confidence: 1.0, Method: "vertex"}, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

// stripFences removes a markdown code fence the model sometimes wraps
// JSON output in despite the response MIME type.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
