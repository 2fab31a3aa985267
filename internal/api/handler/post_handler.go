package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/comunidad/social-api/internal/api/metrics"
	"github.com/comunidad/social-api/internal/core/ports"
)

// DefaultMaxUploadBytes bounds the multipart body of a new post.
const DefaultMaxUploadBytes = 50 << 20

// PostHandler serves the publication feed.
type PostHandler struct {
	posts     ports.PostService
	maxUpload int64
}

func NewPostHandler(posts ports.PostService, maxUpload int64) *PostHandler {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}
	return &PostHandler{posts: posts, maxUpload: maxUpload}
}

// Create handles POST /api/posts. The body is multipart with a caption field
// and an optional media file.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        caption  formData  string  true   "Caption"
// @Param        media    formData  file    false  "Image or video"
// @Success      200      {object}  postResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      413      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	r := c.Request()
	r.Body = http.MaxBytesReader(c.Response(), r.Body, h.maxUpload)

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return uploadError(err)
	}

	in := ports.CreatePostInput{ActorID: userID, Caption: req.Caption}

	fh, err := c.FormFile("media")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			return opError("Error al crear publicación", err)
		}
		defer f.Close()

		in.Media = &ports.MediaInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Body:        f,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return uploadError(err)
	}

	post, err := h.posts.Create(r.Context(), in)
	if err != nil {
		return opError("Error al crear publicación", err)
	}

	metrics.PostsCreatedTotal.WithLabelValues(strconv.FormatBool(in.Media != nil)).Inc()
	if in.Media != nil {
		metrics.MediaUploadBytes.Observe(float64(in.Media.Size))
	}
	return c.JSON(http.StatusOK, toPostResponse(post, false))
}

// List handles GET /api/posts, newest first.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   postResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return opError("Error al obtener publicaciones", err)
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toPostResponse(p, true))
	}
	return c.JSON(http.StatusOK, resp)
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Archivo demasiado grande")
	}
	return echo.NewHTTPError(http.StatusBadRequest, "Datos de publicación inválidos")
}
