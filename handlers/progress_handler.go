package handlers

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v4"

	config "github.com/mastaskillz/course_studio/configs"
	ws "github.com/mastaskillz/course_studio/websocket"
)

// ServeProgressWs attaches a creator to the upload-progress hub. Browsers
// cannot set Authorization headers on websocket upgrades, so the JWT rides
// in the token query parameter.
func ServeProgressWs(c *websocket.Conn) {
	tokenString := c.Query("token")
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		log.Println("Rejected progress websocket: invalid token")
		c.Close()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.Close()
		return
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		c.Close()
		return
	}

	client := &ws.Client{UserID: userID, Conn: c}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		c.Close()
	}()

	// Reads keep the connection alive; the hub only pushes.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
