package http_scene

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/coordinator/internal/delivery/http/common"
	usecase_scene "github.com/humanbelnik/coordinator/internal/usecase/scene"
)

type Controller struct {
	usecase *usecase_scene.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_scene.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate/:room_code", c.generate)
}

// GenerateRequestDTO is optional. Solo mode needs both fields; solo without
// user_data falls back to the room.
type GenerateRequestDTO struct {
	Solo     bool                       `json:"solo"`
	UserData *http_common.SubmissionDTO `json:"user_data"`
}

type MergedDataDTO struct {
	Toys    []string `json:"toys"`
	Kinks   []string `json:"kinks"`
	Outfits []string `json:"outfits"`
}

type GenerateResponseDTO struct {
	Merged        bool                           `json:"merged"`
	Intensity     string                         `json:"intensity"`
	Roles         []string                       `json:"roles"`
	MergedData    MergedDataDTO                  `json:"merged_data"`
	Questionnaire []http_common.QuestionnaireDTO `json:"questionnaire"`
	OllamaURL     string                         `json:"ollama_url"`
	OllamaModel   string                         `json:"ollama_model"`
}

func FromResult(res usecase_scene.Result) GenerateResponseDTO {
	roles := make([]string, 0, len(res.Scene.Roles))
	for _, r := range res.Scene.Roles {
		roles = append(roles, string(r))
	}

	questionnaires := make([]http_common.QuestionnaireDTO, 0, len(res.Scene.Questionnaires))
	for _, q := range res.Scene.Questionnaires {
		questionnaires = append(questionnaires, http_common.FromQuestionnaire(q))
	}

	return GenerateResponseDTO{
		Merged:    true,
		Intensity: string(res.Scene.FinalIntensity),
		Roles:     roles,
		MergedData: MergedDataDTO{
			Toys:    nonNil(res.Scene.Toys),
			Kinks:   nonNil(res.Scene.Kinks),
			Outfits: nonNil(res.Scene.Outfits),
		},
		Questionnaire: questionnaires,
		OllamaURL:     res.Generator.URL,
		OllamaModel:   res.Generator.Model,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (c *Controller) generate(ctx *gin.Context) {
	var req GenerateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		http_common.AbortBinding(ctx, c.logger, err)
		return
	}

	var (
		res usecase_scene.Result
		err error
	)
	if req.Solo && req.UserData != nil {
		res = c.usecase.Solo(ctx, req.UserData.ToModel())
	} else {
		res, err = c.usecase.Room(ctx, ctx.Param("room_code"))
	}
	if err != nil {
		http_common.Abort(ctx, c.logger, "failed to generate scene", err)
		return
	}

	ctx.JSON(http.StatusOK, FromResult(res))
}
