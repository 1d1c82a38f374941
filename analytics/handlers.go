package analytics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the tracking beacon and the admin stats endpoint.
type Handler struct {
	store *Store
	salt  string
}

// NewHandler creates a Handler, initializing the hashing salt.
func NewHandler(store *Store) (*Handler, error) {
	salt, err := InitSalt(store)
	if err != nil {
		return nil, err
	}
	return &Handler{store: store, salt: salt}, nil
}

type trackPayload struct {
	Path     string `json:"path"`
	Referrer string `json:"referrer"`
}

// HandleTrack records a page view. Admin paths are never tracked.
func (h *Handler) HandleTrack(c echo.Context) error {
	var p trackPayload
	if err := c.Bind(&p); err != nil || p.Path == "" {
		return c.NoContent(http.StatusBadRequest)
	}
	if strings.HasPrefix(p.Path, "/admin") {
		return c.NoContent(http.StatusNoContent)
	}

	ua := c.Request().UserAgent()
	browser, osName, device := ClassifyUserAgent(ua)
	ip := c.RealIP()

	visit := &Visit{
		VisitorID: HashIdentity(h.salt, ip, ua),
		IPHash:    HashIP(h.salt, ip),
		Browser:   browser,
		OS:        osName,
		Device:    device,
		Path:      p.Path,
		Referrer:  p.Referrer,
		Timestamp: time.Now(),
	}
	if err := h.store.SaveVisit(visit); err != nil {
		c.Logger().Errorf("save visit: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleStats serves aggregate stats for the last ?days= days (default 30).
func (h *Handler) HandleStats(c echo.Context) error {
	days := 30
	if v := c.QueryParam("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}
	to := time.Now()
	from := to.AddDate(0, 0, -days)
	stats, err := h.store.GetStats(from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
