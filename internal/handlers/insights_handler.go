package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quickspend/internal/analytics"
	apperrors "quickspend/internal/errors"
	"quickspend/internal/services"
)

// InsightsHandler handles dashboard, streak, and autocomplete requests.
type InsightsHandler struct {
	insightsService services.InsightsServicer
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService services.InsightsServicer) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// parsePeriod reads the period query parameters. Defaults to this_month.
func parsePeriod(c *gin.Context) (analytics.Period, error) {
	raw := c.DefaultQuery("period", string(analytics.PeriodThisMonth))
	periodType, ok := analytics.ParsePeriodType(raw)
	if !ok {
		return analytics.Period{}, apperrors.ErrInvalidPeriod
	}

	period := analytics.Period{Type: periodType}
	if periodType == analytics.PeriodCustom {
		start, err := parseFlexibleTime(c.Query("start"))
		if err != nil {
			return analytics.Period{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "custom period requires a valid start date")
		}
		end, err := parseFlexibleTime(c.Query("end"))
		if err != nil {
			return analytics.Period{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "custom period requires a valid end date")
		}
		period.Start = start
		period.End = end
	}
	return period, nil
}

// GetDashboard returns the aggregated dashboard for a period
// @Summary     Get dashboard
// @Description Get spending aggregates, series, and breakdowns for a period
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period (this_month, last_month, this_year, last_year, all_time, custom)"
// @Param       start query string false "Custom period start (YYYY-MM-DD)"
// @Param       end query string false "Custom period end (YYYY-MM-DD)"
// @Success     200 {object} analytics.Dashboard "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /insights/dashboard [get]
func (h *InsightsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.insightsService.Dashboard(userID, period, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

// GetCards returns the dashboard rendered as an ordered card list
// @Summary     Get insight cards
// @Description Get the dashboard as a fixed-order list of stat, chart, and insight cards
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period (this_month, last_month, this_year, last_year, all_time, custom)"
// @Param       start query string false "Custom period start (YYYY-MM-DD)"
// @Param       end query string false "Custom period end (YYYY-MM-DD)"
// @Success     200 {array} analytics.Card "Cards"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /insights/cards [get]
func (h *InsightsHandler) GetCards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cards, err := h.insightsService.Cards(userID, period, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// GetStreaks returns the user's current spending streaks
// @Summary     Get streaks
// @Description Get consecutive-day spending and no-spending streaks
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} streak.Data "Streaks"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /insights/streaks [get]
func (h *InsightsHandler) GetStreaks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	streaks, err := h.insightsService.Streaks(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"streaks": streaks})
}

// GetSuggestions returns autocomplete suggestions for a partial entry
// @Summary     Get suggestions
// @Description Get autocomplete suggestions from past expenses for a partial reason
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       q query string true "Partial reason text"
// @Param       limit query int false "Maximum suggestions (default 5)"
// @Success     200 {array} suggest.Suggestion "Suggestions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /insights/suggestions [get]
func (h *InsightsHandler) GetSuggestions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed < 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid limit"))
			return
		}
		limit = parsed
	}

	suggestions, err := h.insightsService.Suggestions(userID, c.Query("q"), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
