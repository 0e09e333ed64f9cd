package handlers

import (
	"momentos/internal/metrics"
	"momentos/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// SubscribeHandler keeps a page in sync: it sends a full snapshot on connect and
// then every change broadcast through hub. Incoming frames are ignored.
func SubscribeHandler(hub *Hub, snapshot func() interface{}) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		connID := uuid.New().String()

		if err := hub.Register(connID, c, snapshot); err != nil {
			utils.LogError(err, "Subscribe")
		}
		metrics.SubscribersConnected.Inc()
		log.Debugw("page subscribed", "conn_id", connID)

		defer func() {
			hub.Unregister(connID)
			metrics.SubscribersConnected.Dec()
			log.Debugw("page unsubscribed", "conn_id", connID)
			c.Close()
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Warnf("ws read error: %v", err)
				}
				return
			}
		}
	})
}

// WSUpgradeMiddleware rejects plain HTTP requests on the websocket route
func WSUpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
