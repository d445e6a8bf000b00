package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"requisiciones/internal/app/config"
	"requisiciones/internal/app/ds"
	"requisiciones/internal/app/dto"
	"requisiciones/internal/app/redis"
	"requisiciones/internal/app/repository"
	"requisiciones/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      config,
	}
}

// generateHashString genera un hash SHA-1 de la cadena
func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *AuthHandler) generarToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "requisiciones",
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     role.Parse(user.Role),
	})
	return token.SignedString([]byte(h.Config.JWT.Token))
}

// RegisterUser registra un usuario nuevo
// @Summary Registro de usuario
// @Description Crea un usuario con su rol (Mantenimiento / Almacén / Compras)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Datos de registro"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	exists, _ := h.Repository.UserExistsByUsername(request.Username)
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("ya existe un usuario con ese nombre"))
		return
	}

	hashedPassword := generateHashString(request.Password)

	user, err := h.Repository.CreateUser(request.Username, hashedPassword, request.Role)
	if err != nil {
		logrus.Error("Error creating user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("error al registrar el usuario"))
		return
	}

	accessToken, err := h.generarToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	response := dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "usuario registrado correctamente",
		"user":    response,
		"data":    accessToken, // token JWT
	})
}

// LoginUser autentica un usuario
// @Summary Inicio de sesión
// @Description Autentica al usuario y regresa un token JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	hashedPassword := generateHashString(request.Password)

	user, err := h.Repository.GetUserByUsername(request.Username)
	if err != nil || user.Password != hashedPassword {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("usuario o contraseña incorrectos"))
		return
	}

	accessToken, err := h.generarToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "usuario autenticado correctamente",
		"user_id":    user.ID,
		"username":   user.Username,
		"role":       user.Role,
		"token":      accessToken,
		"expires_in": int(h.Config.JWT.ExpiresIn.Seconds()),
		"token_type": "Bearer",
	})
}

// LogoutUser cierra la sesión del usuario
// @Summary Cierre de sesión
// @Description Invalida el token agregándolo al blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// Parsear para conocer el TTL restante
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})

	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		// El token ya expiró
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "sesión cerrada correctamente",
		})
		return
	}

	err = h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "sesión cerrada correctamente",
	})
}

// GetUserProfile regresa el perfil del usuario autenticado
// @Summary Perfil del usuario
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("usuario no autenticado"))
		return
	}

	user, err := h.Repository.GetUserByID(userID.(uint))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("usuario no encontrado"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// errorHandler manejo centralizado de errores
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}
