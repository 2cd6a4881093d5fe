package httpapi

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/prompt"
)

type promptDataRequest struct {
	PromptData  *prompt.Data `json:"promptData" binding:"required"`
	TargetModel string       `json:"targetModel"`
}

type applyPatternRequest struct {
	PatternID string            `json:"patternId" binding:"notblank"`
	Variables map[string]string `json:"variables"`
}

type inputRequest struct {
	Input string `json:"input" binding:"notblank"`
	Model string `json:"model"`
}

type strategyQuery struct {
	ContentGoalID string `form:"contentGoalId" binding:"required"`
	ContentTypeID string `form:"contentTypeId" binding:"required"`
}

type optimalPromptRequest struct {
	UserRequest       string `json:"userRequest" binding:"notblank"`
	TargetLLM         string `json:"targetLLM"`
	UseCase           string `json:"useCase"`
	AdditionalContext string `json:"additionalContext"`
}

type variantsRequest struct {
	UserRequest      string `json:"userRequest" binding:"notblank"`
	TargetLLM        string `json:"targetLLM"`
	UseCase          string `json:"useCase"`
	NumberOfVariants int    `json:"numberOfVariants" binding:"omitempty,min=1,max=10"`
}

type enhancePatternRequest struct {
	PatternID string            `json:"patternId" binding:"notblank"`
	Variables map[string]string `json:"variables"`
	TargetLLM string            `json:"targetLLM"`
	UseCase   string            `json:"useCase"`
}

type generateResponse struct {
	Content  string  `json:"content"`
	Model    string  `json:"model"`
	PromptID *string `json:"promptId"`
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		handleError(c, bindingError(err))
		return false
	}
	return true
}

func (s *Server) hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from PromptPro API!"})
}

// aiServices reports which generation families have credentials
func (s *Server) aiServices(c *gin.Context) {
	status := gin.H{}
	for _, family := range []string{"openai", "xai", "anthropic", "gemini", "ollama", "custom"} {
		if slices.Contains(s.deps.Families, family) {
			status[family] = "configured"
		} else {
			status[family] = "not configured"
		}
	}
	c.JSON(http.StatusOK, status)
}

// generate sends a finished prompt to the provider its model names
func (s *Server) generate(c *gin.Context) {
	var data prompt.Data
	if !bindJSON(c, &data) {
		return
	}

	content, err := s.deps.Writer.Generate(c.Request.Context(), data)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, generateResponse{Content: content, Model: data.Model})
}

func (s *Server) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Profiles.PublicProfiles())
}

func (s *Server) optimizePrompt(c *gin.Context) {
	var req promptDataRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.deps.Profiles.Optimize(*req.PromptData, req.TargetModel))
}

func (s *Server) listPatterns(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Patterns.All())
}

func (s *Server) getPattern(c *gin.Context) {
	id := c.Param("id")
	p, ok := s.deps.Patterns.Get(id)
	if !ok {
		handleError(c, fmt.Errorf("%w: %s", pattern.ErrNotFound, id))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) patternsByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Patterns.ByCategory(c.Param("category")))
}

func (s *Server) patternsByContentType(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Patterns.ByContentType(c.Param("contentType")))
}

func (s *Server) patternsByGoal(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Patterns.ByGoal(c.Param("goal")))
}

func (s *Server) applyPattern(c *gin.Context) {
	var req applyPatternRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := s.deps.Patterns.Apply(req.PatternID, req.Variables)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (s *Server) listGoals(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Selector.Goals())
}

func (s *Server) getGoal(c *gin.Context) {
	id := c.Param("id")
	goal, ok := s.deps.Selector.Goal(id)
	if !ok {
		handleError(c, fmt.Errorf("%w: %s", errGoalNotFound, id))
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (s *Server) listContentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Selector.ContentTypes())
}

func (s *Server) getContentType(c *gin.Context) {
	id := c.Param("id")
	ct, ok := s.deps.Selector.ContentType(id)
	if !ok {
		handleError(c, fmt.Errorf("%w: %s", errTypeNotFound, id))
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (s *Server) recommendStrategy(c *gin.Context) {
	var q strategyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		handleError(c, bindingError(err))
		return
	}

	rec, err := s.deps.Selector.Recommend(q.ContentGoalID, q.ContentTypeID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) analyzeInput(c *gin.Context) {
	var req inputRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := s.deps.Selector.AnalyzeInput(req.Input)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) recommendPrompt(c *gin.Context) {
	var req inputRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := s.deps.Selector.RecommendPrompt(req.Input, req.Model)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (s *Server) analyzePrompt(c *gin.Context) {
	var req promptDataRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, s.deps.Scorer.Analyze(*req.PromptData))
}

func (s *Server) optimalPrompt(c *gin.Context) {
	var req optimalPromptRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := s.deps.Orchestrator.GenerateOptimal(c.Request.Context(), pipeline.Request{
		UserRequest:       req.UserRequest,
		TargetLLM:         s.orDefaultLLM(req.TargetLLM),
		UseCase:           s.orDefaultUseCase(req.UseCase),
		AdditionalContext: req.AdditionalContext,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (s *Server) promptVariants(c *gin.Context) {
	var req variantsRequest
	if !bindJSON(c, &req) {
		return
	}

	n := req.NumberOfVariants
	if n == 0 {
		n = s.opts.DefaultVariants
	}

	variants, err := s.deps.Orchestrator.GenerateVariants(c.Request.Context(), pipeline.Request{
		UserRequest: req.UserRequest,
		TargetLLM:   s.orDefaultLLM(req.TargetLLM),
		UseCase:     s.orDefaultUseCase(req.UseCase),
	}, n)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (s *Server) enhancePattern(c *gin.Context) {
	var req enhancePatternRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := s.deps.Orchestrator.ApplyAndEnhance(c.Request.Context(),
		req.PatternID,
		req.Variables,
		s.orDefaultLLM(req.TargetLLM),
		s.orDefaultUseCase(req.UseCase),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (s *Server) orDefaultLLM(v string) string {
	if v == "" {
		return s.opts.DefaultTargetLLM
	}
	return v
}

func (s *Server) orDefaultUseCase(v string) string {
	if v == "" {
		return s.opts.DefaultUseCase
	}
	return v
}
