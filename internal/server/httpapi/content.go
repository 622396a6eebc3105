package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Franco-15/classroom-backend/internal/service"
)

// ContentHandler serves the class feed: announcements and materials.
type ContentHandler struct {
	announcements *service.AnnouncementService
	materials     *service.MaterialService
}

func NewContentHandler(announcements *service.AnnouncementService, materials *service.MaterialService) *ContentHandler {
	return &ContentHandler{announcements: announcements, materials: materials}
}

func (h *ContentHandler) RegisterClassRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/{classId}/announcements", h.ListAnnouncements)
		r.Post("/{classId}/announcements", h.CreateAnnouncement)
		r.Get("/{classId}/materials", h.ListMaterials)
		r.Post("/{classId}/materials", h.CreateMaterial)
	})
}

func (h *ContentHandler) RegisterAnnouncementRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Delete("/{announcementId}", h.DeleteAnnouncement)
}

func (h *ContentHandler) RegisterMaterialRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Delete("/{materialId}", h.DeleteMaterial)
}

type createAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *ContentHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req createAnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	announcement, err := h.announcements.CreateAnnouncement(r.Context(), service.CreateAnnouncementInput{
		ClassID: classID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnnouncementResponse(announcement))
}

func (h *ContentHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.announcements.ListAnnouncements(r.Context(), classID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnnouncementResponses(items))
}

func (h *ContentHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "announcementId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.announcements.DeleteAnnouncement(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "announcement deleted"})
}

type createMaterialRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	FileURL     *string `json:"fileUrl"`
	Link        *string `json:"link"`
}

func (h *ContentHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req createMaterialRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	material, err := h.materials.CreateMaterial(r.Context(), service.CreateMaterialInput{
		ClassID:     classID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		Link:        req.Link,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMaterialResponse(material))
}

func (h *ContentHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.materials.ListMaterials(r.Context(), classID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMaterialResponses(items))
}

func (h *ContentHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "materialId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.materials.DeleteMaterial(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "material deleted"})
}
