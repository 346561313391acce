package http_collab

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/coordinator/internal/delivery/http/common"
	"github.com/humanbelnik/coordinator/internal/model"
	usecase_collab "github.com/humanbelnik/coordinator/internal/usecase/collab"
)

const (
	maxAudioBytes = 32 << 20
	statusRunning = "running"
	statusSuccess = "success"
)

type RoomCounter interface {
	Count() int
}

type Controller struct {
	usecase *usecase_collab.Usecase
	rooms   RoomCounter
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_collab.Usecase, rooms RoomCounter, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		rooms:   rooms,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/llm", c.llm)
	router.POST("/tts", c.tts)
	router.POST("/stt", c.stt)
	router.GET("/health", c.health)

	models := router.Group("/models")
	{
		models.GET("/tags", c.tags)
		models.GET("/files", c.files)
		models.POST("/load", c.load)
	}
}

type LLMRequestDTO struct {
	Prompt           string  `json:"prompt" binding:"required"`
	Model            *string `json:"model"`
	Temperature      float64 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	TopP             float64 `json:"top_p"`
	TopK             int     `json:"top_k"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
	ContextLength    int     `json:"context_length"`
	RepeatPenalty    float64 `json:"repeat_penalty"`
}

func newLLMRequest() LLMRequestDTO {
	d := usecase_collab.DefaultCompletionRequest()
	return LLMRequestDTO{
		Temperature:      d.Temperature,
		MaxTokens:        d.MaxTokens,
		TopP:             d.TopP,
		TopK:             d.TopK,
		FrequencyPenalty: d.FrequencyPenalty,
		PresencePenalty:  d.PresencePenalty,
		ContextLength:    d.ContextLength,
		RepeatPenalty:    d.RepeatPenalty,
	}
}

func (d LLMRequestDTO) ToModel() model.CompletionRequest {
	req := model.CompletionRequest{
		Prompt:           d.Prompt,
		Temperature:      d.Temperature,
		MaxTokens:        d.MaxTokens,
		TopP:             d.TopP,
		TopK:             d.TopK,
		FrequencyPenalty: d.FrequencyPenalty,
		PresencePenalty:  d.PresencePenalty,
		ContextLength:    d.ContextLength,
		RepeatPenalty:    d.RepeatPenalty,
	}
	if d.Model != nil {
		req.Model = *d.Model
	}
	return req
}

type LLMResponseDTO struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Done  bool   `json:"done"`
}

func (c *Controller) llm(ctx *gin.Context) {
	req := newLLMRequest()
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	completion, err := c.usecase.Complete(ctx, req.ToModel())
	if err != nil {
		http_common.Abort(ctx, c.logger, "llm request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, LLMResponseDTO{
		Text:  completion.Text,
		Model: completion.Model,
		Done:  completion.Done,
	})
}

type TTSRequestDTO struct {
	Text  string `json:"text" binding:"required"`
	Voice string `json:"voice"`
}

type TTSResponseDTO struct {
	Audio  string `json:"audio"`
	Format string `json:"format"`
}

func (c *Controller) tts(ctx *gin.Context) {
	req := TTSRequestDTO{Voice: "default"}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	speech, err := c.usecase.Speak(ctx, req.Text, req.Voice)
	if err != nil {
		http_common.Abort(ctx, c.logger, "tts request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, TTSResponseDTO{
		Audio:  base64.StdEncoding.EncodeToString(speech.Audio),
		Format: speech.Format,
	})
}

// stt accepts either a multipart upload in the "file" field or the raw audio
// as the request body.
func (c *Controller) stt(ctx *gin.Context) {
	audio, err := readAudio(ctx)
	if err != nil {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	transcript, err := c.usecase.Transcribe(ctx, audio)
	if err != nil {
		http_common.Abort(ctx, c.logger, "stt request failed", err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", transcript)
}

func readAudio(ctx *gin.Context) ([]byte, error) {
	body := http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxAudioBytes)

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		ctx.Request.Body = body
		fh, err := ctx.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("file field: %w", err)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	return io.ReadAll(body)
}

type TagsResponseDTO struct {
	Models []string `json:"models"`
	Error  string   `json:"error,omitempty"`
}

// tags never fails; the error is reported next to an empty list.
func (c *Controller) tags(ctx *gin.Context) {
	tags, err := c.usecase.Tags(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to list model tags", slog.String("error", err.Error()))
		ctx.JSON(http.StatusOK, TagsResponseDTO{Models: []string{}, Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, TagsResponseDTO{Models: tags})
}

type FilesResponseDTO struct {
	Files []string `json:"files"`
	Error string   `json:"error,omitempty"`
}

func (c *Controller) files(ctx *gin.Context) {
	files, err := c.usecase.ModelFiles()
	if err != nil {
		c.logger.WarnContext(ctx, "failed to list model files", slog.String("error", err.Error()))
		ctx.JSON(http.StatusOK, FilesResponseDTO{Files: []string{}, Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, FilesResponseDTO{Files: files})
}

type LoadRequestDTO struct {
	Filename  string `json:"filename"`
	ModelName string `json:"model_name"`
}

type LoadResponseDTO struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

func (c *Controller) load(ctx *gin.Context) {
	var req LoadRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	if err := c.usecase.LoadModel(ctx, req.Filename, req.ModelName); err != nil {
		http_common.Abort(ctx, c.logger, "model load failed", err)
		return
	}

	ctx.JSON(http.StatusOK, LoadResponseDTO{Status: statusSuccess, Model: req.ModelName})
}

type ServicesDTO struct {
	Ollama string `json:"ollama"`
	TTS    string `json:"tts"`
	STT    string `json:"stt"`
}

type HealthResponseDTO struct {
	Status   string      `json:"status"`
	Rooms    int         `json:"rooms"`
	Services ServicesDTO `json:"services"`
}

func (c *Controller) health(ctx *gin.Context) {
	h := c.usecase.Health(ctx)

	ctx.JSON(http.StatusOK, HealthResponseDTO{
		Status: statusRunning,
		Rooms:  c.rooms.Count(),
		Services: ServicesDTO{
			Ollama: h.Ollama,
			TTS:    h.TTS,
			STT:    h.STT,
		},
	})
}
