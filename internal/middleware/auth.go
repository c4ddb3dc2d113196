package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rate_front_end/internal/session"
)

// Clés posées dans le contexte Gin par SessionAuth
const (
	CtxAccessToken = "access_token"
	CtxUser        = "session_user"
)

// LoginRedirect est l'indication renvoyée avec chaque 401 : le client doit
// repasser par l'écran de connexion au lieu d'afficher une erreur générique
const LoginRedirect = "/auth/login"

// SessionAuth résout la session cookie et met le token backend et le profil
// en cache dans le contexte Gin. required=false laisse passer les visiteurs
// anonymes (pages publiques à sections conditionnelles).
func SessionAuth(store *session.Store, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := store.Current(c.Request.Context(), c.Request)
		if err != nil {
			log.Printf("⚠️ Lecture session impossible: %v", err)
		}

		if rec == nil || rec.AccessToken == "" {
			if required {
				abortToLogin(c)
				return
			}
			c.Next()
			return
		}

		// Pré-contrôle d'expiration : la passerelle ne détient pas la clé de
		// signature du backend, on lit donc le claim exp sans vérifier la
		// signature, juste pour ne pas relayer un token manifestement mort
		if tokenExpired(rec.AccessToken) {
			store.Clear(c.Request.Context(), c.Writer, c.Request)
			if required {
				abortToLogin(c)
				return
			}
			c.Next()
			return
		}

		c.Set(CtxAccessToken, rec.AccessToken)
		if rec.User != nil {
			c.Set(CtxUser, rec.User)
		}
		c.Next()
	}
}

// AbortToLogin répond 401 avec l'indication de redirection ; utilisé aussi
// par les handlers quand le backend répond 401 en cours de route
func AbortToLogin(c *gin.Context, store *session.Store) {
	store.Clear(c.Request.Context(), c.Writer, c.Request)
	abortToLogin(c)
}

func abortToLogin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Non authentifié",
		"redirect": LoginRedirect,
	})
}

// tokenExpired lit le claim exp sans valider la signature
func tokenExpired(tokenString string) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		// Token illisible : on laisse le backend trancher
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Now().Unix() > int64(exp)
	}
	return false
}
