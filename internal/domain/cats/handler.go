package cats

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"petweb/internal/ports/files"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, uploads files.Store, logger *zap.SugaredLogger) {
	r.Get("/", listCatsHandler(svc, logger))
	r.Get("/getCat/{id}", getCatHandler(svc, logger))
	r.Post("/createCat", createCatHandler(svc, uploads, logger))
	r.Put("/updateCat/{id}", updateCatHandler(svc, uploads, logger))
	r.Delete("/deleteCat/{id}", deleteCatHandler(svc, logger))
}

type catResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// catRequest cubre los campos del gato tanto en JSON como en
// multipart/form-data (cuando viene foto adjunta). Age es puntero para
// distinguir "no vino" (requerido ausente) de un 0 explícito válido.
type catRequest struct {
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
}

// uploadPart es el archivo adjunto del form, si vino.
type uploadPart struct {
	File     multipart.File
	Filename string
}

const maxUploadMemory = 10 << 20 // 10 MiB en memoria, el resto a disco temporal

// decodeCatRequest acepta JSON o multipart/form-data con campo "image".
func decodeCatRequest(r *http.Request) (catRequest, *uploadPart, error) {
	ct := r.Header.Get("Content-Type")
	mt, _, _ := mime.ParseMediaType(ct)

	if strings.HasPrefix(mt, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return catRequest{}, nil, err
		}

		var req catRequest
		req.Name = r.FormValue("name")
		req.Breed = r.FormValue("breed")
		req.Gender = r.FormValue("gender")
		if v := strings.TrimSpace(r.FormValue("age")); v != "" {
			age, err := strconv.Atoi(v)
			if err != nil {
				return catRequest{}, nil, errors.New("age must be a number")
			}
			req.Age = &age
		}

		f, fh, err := r.FormFile("image")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return req, nil, nil
			}
			return catRequest{}, nil, err
		}
		return req, &uploadPart{File: f, Filename: fh.Filename}, nil
	}

	var req catRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return catRequest{}, nil, errors.New("invalid json")
	}
	return req, nil, nil
}

// storeUpload guarda el archivo adjunto y devuelve el nombre generado.
// Sin archivo devuelve "" (el gato queda sin imagen).
func storeUpload(r *http.Request, uploads files.Store, part *uploadPart) (string, error) {
	if part == nil {
		return "", nil
	}
	defer part.File.Close()
	return uploads.Save(r.Context(), part.Filename, part.File)
}

// listCatsHandler godoc
// @Summary Get all cats
// @Produce json
// @Success 200 {array} cats.catResponse
// @Router / [get]
func listCatsHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.Errorf("listing cats: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		out := make([]catResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCatResponse(c))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getCatHandler godoc
// @Summary Get a cat by ID
// @Param id path string true "ID of the cat"
// @Produce json
// @Success 200 {object} cats.catResponse
// @Router /getCat/{id} [get]
func getCatHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				// ausencia no es error en esta API: va null con 200
				writeJSON(w, http.StatusOK, nil)
				return
			}
			logger.Errorf("getting cat: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// createCatHandler godoc
// @Summary Create a new cat
// @Accept json,mpfd
// @Produce json
// @Success 201 {object} cats.catResponse
// @Router /createCat [post]
func createCatHandler(svc *Service, uploads files.Store, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, part, err := decodeCatRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		if req.Age == nil {
			// age es requerido: ausente se rechaza, 0 explícito vale
			writeError(w, http.StatusBadRequest, "VALIDATION", "name, breed, age and gender are required")
			return
		}

		image, err := storeUpload(r, uploads, part)
		if err != nil {
			logger.Errorf("saving upload: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "could not store file")
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Breed:  req.Breed,
			Age:    *req.Age,
			Gender: req.Gender,
			Image:  image,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "VALIDATION", "name, breed, age and gender are required")
				return
			}
			logger.Errorf("creating cat: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, toCatResponse(c))
	}
}

// updateCatHandler godoc
// @Summary Update an existing cat
// @Param id path string true "ID of the cat"
// @Accept json,mpfd
// @Produce json
// @Success 200 {object} cats.catResponse
// @Router /updateCat/{id} [put]
func updateCatHandler(svc *Service, uploads files.Store, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, part, err := decodeCatRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		if req.Age == nil {
			writeError(w, http.StatusBadRequest, "VALIDATION", "name, breed, age and gender are required")
			return
		}

		image, err := storeUpload(r, uploads, part)
		if err != nil {
			logger.Errorf("saving upload: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "could not store file")
			return
		}

		// ojo: si no vino archivo, image queda "" y pisa la referencia
		// anterior. Es el contrato de update (reemplazo completo).
		c, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:   req.Name,
			Breed:  req.Breed,
			Age:    *req.Age,
			Gender: req.Gender,
			Image:  image,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "VALIDATION", "name, breed, age and gender are required")
			case errors.Is(err, ErrNotFound):
				writeJSON(w, http.StatusOK, nil)
			default:
				logger.Errorf("updating cat: %v", err)
				writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// deleteCatHandler godoc
// @Summary Delete a cat
// @Param id path string true "ID of the cat"
// @Produce json
// @Success 200 {object} cats.catResponse
// @Router /deleteCat/{id} [delete]
func deleteCatHandler(svc *Service, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusOK, nil)
				return
			}
			logger.Errorf("deleting cat: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

func toCatResponse(c Cat) catResponse {
	return catResponse{
		ID:        c.ID,
		Name:      c.Name,
		Breed:     c.Breed,
		Age:       c.Age,
		Gender:    string(c.Gender),
		Image:     c.Image,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (cats/users/messages) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
