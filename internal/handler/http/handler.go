package handler

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	_ "github.com/aniladanir/qr-sms-service/docs"
	"github.com/aniladanir/qr-sms-service/internal/codec"
	"github.com/aniladanir/qr-sms-service/internal/domain"
	"github.com/aniladanir/qr-sms-service/internal/service"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	linker   service.SMSLinker
	logger   *slog.Logger
	server   *http.Server
	qrMaxAge time.Duration
}

// NewHttpHandler builds the router. qrMaxAge sets the Cache-Control max-age
// of QR images, zero omits the header.
//
// @title QR SMS API
// @version 1.0
// @description Builds shareable QR links that open prefilled sms: messages on a phone
// @host localhost:6060
// @BasePath /
func NewHttpHandler(addr string, svc service.SMSLinker, logger *slog.Logger, qrMaxAge time.Duration) *Handler {
	h := &Handler{
		linker:   svc,
		logger:   logger,
		qrMaxAge: qrMaxAge,
	}

	// create router
	router := gin.Default()
	router.Use(requestID())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	// register routes
	router.GET("/", h.index)
	router.POST("/", h.composeForm)
	router.GET("/qr.png", h.qrCode)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api/v1")
	api.POST("/links", h.createLink)
	api.GET("/dispatch", h.getDispatch)
	api.GET("/stats", h.getStats)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// create http server
	h.server = &http.Server{
		Addr:    addr,
		Handler: router.Handler(),
	}

	return h
}

func (h *Handler) Run() error {
	return h.server.ListenAndServe()
}

func (h *Handler) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

type composeView struct {
	Phones     string
	PhoneCount int
	Message    string
	Error      string
	Link       *domain.ShareLink
}

type recipientView struct {
	Index int
	Phone string
	URI   template.URL
}

type dispatchView struct {
	Error      string
	LinkID     string
	Count      int
	AllURI     template.URL
	Recipients []recipientView
}

// index renders the dispatch page when both p and m are present and the
// compose form otherwise
func (h *Handler) index(c *gin.Context) {
	if codec.ModeOf(c.Request.URL.Query()) == domain.ModeCompose {
		c.HTML(http.StatusOK, "compose.html", composeView{})
		return
	}

	d, err := h.linker.Dispatch(c.Request.Context(), c.Query(codec.ParamPhones), c.Query(codec.ParamMessage), c.GetHeader("User-Agent"))
	if err != nil {
		c.HTML(http.StatusOK, "dispatch.html", dispatchView{Error: userMessage(err)})
		return
	}

	view := dispatchView{
		LinkID: d.LinkID,
		Count:  len(d.Recipients),
		// sms: is not on html/template's list of safe schemes
		AllURI:     template.URL(d.AllURI),
		Recipients: make([]recipientView, 0, len(d.Recipients)),
	}
	for _, r := range d.Recipients {
		view.Recipients = append(view.Recipients, recipientView{
			Index: r.Index,
			Phone: r.Phone,
			URI:   template.URL(r.URI),
		})
	}
	c.HTML(http.StatusOK, "dispatch.html", view)
}

func (h *Handler) composeForm(c *gin.Context) {
	phones := c.PostForm("phones")
	message := c.PostForm("message")

	view := composeView{
		Phones:     phones,
		PhoneCount: len(codec.ParsePhones(phones)),
		Message:    message,
	}

	link, err := h.linker.Compose(c.Request.Context(), phones, message)
	if err != nil {
		view.Error = userMessage(err)
		c.HTML(http.StatusOK, "compose.html", view)
		return
	}

	view.Link = link
	c.HTML(http.StatusOK, "compose.html", view)
}

// QRCode godoc
// @Summary Render a share link as QR code
// @Description Renders the share link for the given transport parameters as a PNG image
// @Tags Links
// @Produce png
// @Param p query string true "comma separated phone numbers"
// @Param m query string true "base64 encoded message"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Router /qr.png [get]
func (h *Handler) qrCode(c *gin.Context) {
	if codec.ModeOf(c.Request.URL.Query()) != domain.ModeDispatch {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing p or m parameter"})
		return
	}

	png, err := h.linker.QRCode(c.Request.Context(), c.Query(codec.ParamPhones), c.Query(codec.ParamMessage))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	if h.qrMaxAge > 0 {
		c.Header("Cache-Control", "public, max-age="+strconv.Itoa(int(h.qrMaxAge.Seconds())))
	}
	c.Data(http.StatusOK, "image/png", png)
}

type CreateLinkRequest struct {
	Phones  []string `json:"phones"`
	Message string   `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateLink godoc
// @Summary Create a share link
// @Description Encodes phone numbers and a message into a share link and QR image path
// @Tags Links
// @Accept json
// @Produce json
// @Param request body CreateLinkRequest true "phone numbers and message"
// @Success 201 {object} domain.ShareLink
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/links [post]
func (h *Handler) createLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	link, err := h.linker.ComposeList(c.Request.Context(), req.Phones, req.Message)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// GetDispatch godoc
// @Summary Decode a share link
// @Description Decodes transport parameters and returns sms: URIs for the requesting platform
// @Tags Links
// @Produce json
// @Param p query string true "comma separated phone numbers"
// @Param m query string true "base64 encoded message"
// @Success 200 {object} domain.Dispatch
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/dispatch [get]
func (h *Handler) getDispatch(c *gin.Context) {
	if codec.ModeOf(c.Request.URL.Query()) != domain.ModeDispatch {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing p or m parameter"})
		return
	}

	d, err := h.linker.Dispatch(c.Request.Context(), c.Query(codec.ParamPhones), c.Query(codec.ParamMessage), c.GetHeader("User-Agent"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetStats godoc
// @Summary Get dispatch statistics
// @Description Returns the number of dispatch page visits and recipients per platform
// @Tags Stats
// @Produce json
// @Success 200 {array} domain.PlatformStats
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.linker.Stats(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) abortWithError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var decodeErr *domain.DecodeError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &decodeErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrStatsDisabled):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			"requestId", c.GetString(requestIDKey),
			"path", c.FullPath(),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// userMessage maps errors to the text shown on the page
func userMessage(err error) string {
	var decodeErr *domain.DecodeError

	switch {
	case errors.Is(err, domain.ErrNoMessage):
		return "❌ 문자 내용을 입력하세요."
	case errors.Is(err, domain.ErrNoPhones) && !errors.As(err, &decodeErr):
		return "❌ 번호를 입력하세요."
	case errors.Is(err, domain.ErrBlankPhone):
		return "❌ 빈 번호가 있습니다."
	case errors.Is(err, domain.ErrCommaInPhone):
		return "❌ 번호에 쉼표(,)를 넣을 수 없습니다."
	case errors.As(err, &decodeErr):
		return "❌ 잘못된 링크입니다. QR 코드를 다시 생성하세요."
	default:
		return "❌ 오류가 발생했습니다. 잠시 후 다시 시도하세요."
	}
}
