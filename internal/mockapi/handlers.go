package mockapi

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TallerExpressCR/taller-app-core/internal/config"
)

type Handler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// --------- auth ---------

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user User
	if err := h.db.First(&user, "email = ?", email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}

func (h *Handler) generateToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// --------- quotes ---------

func quoteJSON(q Quote) gin.H {
	out := gin.H{
		"id":                    q.ID,
		"servicio":              q.Servicio,
		"nombre":                q.Nombre,
		"correo":                q.Correo,
		"telefono":              q.Telefono,
		"provincia":             q.Provincia,
		"canton":                q.Canton,
		"distrito":              q.Distrito,
		"sucursal":              q.Sucursal,
		"fecha":                 q.Fecha,
		"hora":                  q.Hora,
		"tipo_placa":            q.TipoPlaca,
		"placa":                 q.Placa,
		"marca":                 q.Marca,
		"modelo":                q.Modelo,
		"problema":              q.Problema,
		"estado":                q.Estado,
		"tecnico":               q.Tecnico,
		"problemas_adicionales": q.ProblemasAdicionales,
		"observaciones":         q.Observaciones,
		"servicio_id":           q.ServicioID,
	}
	if q.AutorizacionCliente != nil {
		out["autorizacion_cliente"] = *q.AutorizacionCliente
	}
	if q.ReparacionesJSON != "" {
		out["reparaciones_list"] = json.RawMessage(q.ReparacionesJSON)
	}
	if q.ChecklistJSON != "" {
		out["checklist_data"] = json.RawMessage(q.ChecklistJSON)
	}
	return out
}

func (h *Handler) ListQuotes(c *gin.Context) {
	var quotes []Quote
	if err := h.db.Order("created_at").Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_quotes"})
		return
	}

	out := make([]gin.H, len(quotes))
	for i, q := range quotes {
		out[i] = quoteJSON(q)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetQuote(c *gin.Context) {
	var q Quote
	if err := h.db.First(&q, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote_not_found"})
		return
	}
	// el backend real contesta con sobre en esta ruta
	c.JSON(http.StatusOK, gin.H{"quote": quoteJSON(q)})
}

type createQuoteRequest struct {
	SucursalID string `json:"sucursal_id" binding:"required"`
	ServicioID string `json:"servicio_id" binding:"required"`
	Fecha      string `json:"fecha" binding:"required"`
	Hora       string `json:"hora" binding:"required"`
	TipoPlaca  string `json:"tipo_placa" binding:"required"`
	Placa      string `json:"placa" binding:"required"`
	Marca      string `json:"marca" binding:"required"`
	Modelo     string `json:"modelo" binding:"required"`
	Problema   string `json:"problema" binding:"required"`

	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
}

func (h *Handler) CreateQuote(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	q := Quote{
		ID:         uuid.New().String(),
		Servicio:   req.ServicioID,
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Telefono:   req.Telefono,
		Sucursal:   req.SucursalID,
		Fecha:      req.Fecha,
		Hora:       req.Hora,
		TipoPlaca:  req.TipoPlaca,
		Placa:      req.Placa,
		Marca:      req.Marca,
		Modelo:     req.Modelo,
		Problema:   req.Problema,
		Estado:     "Pendiente",
		ServicioID: req.ServicioID,
	}

	if err := h.db.Create(&q).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_quote"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quote": quoteJSON(q)})
}

// patchableFields son los campos que PATCH /quotes/:id acepta; cualquier
// otro se ignora en silencio, igual que el backend real.
func (h *Handler) PatchQuote(c *gin.Context) {
	var q Quote
	if err := h.db.First(&q, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote_not_found"})
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if v, ok := body["status"].(string); ok {
		q.Estado = v
	}
	if v, ok := body["tecnico"].(string); ok {
		q.Tecnico = v
	}
	if v, ok := body["observaciones"].(string); ok {
		q.Observaciones = v
	}
	if v, ok := body["problemas_adicionales"].(string); ok {
		q.ProblemasAdicionales = v
	}
	if v, ok := body["autorizacion_cliente"].(bool); ok {
		q.AutorizacionCliente = &v
	}
	if v, ok := body["servicio_id"].(string); ok {
		q.ServicioID = v
	}
	if v, ok := body["reparaciones_list"]; ok {
		raw, err := json.Marshal(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reparaciones_list"})
			return
		}
		q.ReparacionesJSON = string(raw)
	}
	if v, ok := body["checklist_data"]; ok {
		raw, err := json.Marshal(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_checklist_data"})
			return
		}
		q.ChecklistJSON = string(raw)
	}

	if err := h.db.Save(&q).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quoteJSON(q)})
}

// --------- perfil ---------

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var user User
	if err := h.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}

// --------- placas ---------

// LookupPlate reproduce el formato heredado del registro: JSON escapado
// dentro de un nodo XML.
func (h *Handler) LookupPlate(c *gin.Context) {
	plate := strings.ToUpper(strings.TrimSpace(c.Param("plate")))

	var v Vehicle
	if err := h.db.First(&v, "placa = ?", plate).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	payload, _ := json.Marshal(gin.H{"marca": v.Marca, "modelo": v.Modelo})

	var buf bytes.Buffer
	buf.WriteString("<vehicleJson>")
	_ = xml.EscapeText(&buf, payload)
	buf.WriteString("</vehicleJson>")

	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}
