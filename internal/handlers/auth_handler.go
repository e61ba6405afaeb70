package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/session"
)

type AuthHandler struct {
	config       *config.Config
	sessions     session.Store
	passwordHash []byte
}

func NewAuthHandler(cfg *config.Config, sessions session.Store) *AuthHandler {
	// hash feito uma vez na subida; o login compara via bcrypt
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	return &AuthHandler{
		config:       cfg,
		sessions:     sessions,
		passwordHash: hash,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Senha incorreta.")
		return
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(h.config.SessionTTLHrs) * time.Hour)
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"jti":  jti,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	if err := h.sessions.Put(c.Request.Context(), session.Session{
		Token:     jti,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}); err != nil {
		httperr.Internal(c, "failed_to_create_session", "Erro ao criar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "Autenticação realizada com sucesso.",
	})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	jti, ok := h.sessionID(c)
	if !ok {
		return
	}

	if _, err := h.sessions.Get(c.Request.Context(), jti); err != nil {
		httperr.Unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"message": "Token válido.",
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), jti); err != nil {
		httperr.Internal(c, "failed_to_logout", "Erro ao encerrar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada."})
}

// sessionID extrai e valida o token (query param, como no fluxo do
// painel) e devolve o id de sessão embutido.
func (h *AuthHandler) sessionID(c *gin.Context) (string, bool) {
	raw := c.Query("token")
	if raw == "" {
		httperr.Unauthorized(c, "missing_token", "Token não informado.")
		return "", false
	}

	jti, err := parseSessionToken(raw, h.config.JWTSecret)
	if err != nil {
		httperr.Unauthorized(c, "invalid_token", "Token inválido.")
		return "", false
	}
	return jti, true
}

func parseSessionToken(raw, secret string) (string, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return jti, nil
}
