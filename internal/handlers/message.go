package handlers

import (
	"strconv"

	"facilita/internal/services/messaging"
	"facilita/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	messagingService messaging.Service
}

func NewMessageHandler(messagingService messaging.Service) *MessageHandler {
	return &MessageHandler{messagingService: messagingService}
}

// SendMessage delivers a direct message, optionally scoped to a
// product.
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		ReceiverID    uint   `json:"receiver_id"`
		ProductID     *uint  `json:"product_id"`
		Content       string `json:"content"`
		AttachmentURL string `json:"attachment_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	msg, err := h.messagingService.Send(claims.UserID, input.ReceiverID, input.ProductID, input.Content, input.AttachmentURL)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, msg)
}

// ReplyMessage answers an existing message.
func (h *MessageHandler) ReplyMessage(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid message ID")
	}

	var input struct {
		Content       string `json:"content"`
		AttachmentURL string `json:"attachment_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	msg, err := h.messagingService.Reply(claims.UserID, uint(id), input.Content, input.AttachmentURL)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, msg)
}

// GetInbox returns every message the caller sent or received.
func (h *MessageHandler) GetInbox(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	messages, err := h.messagingService.Inbox(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to load messages")
	}
	return utils.Success(c, messages)
}

// GetConversation returns the thread with another user, oldest first.
func (h *MessageHandler) GetConversation(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	otherID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	messages, err := h.messagingService.Conversation(claims.UserID, uint(otherID))
	if err != nil {
		return utils.InternalError(c, "Failed to load conversation")
	}
	return utils.Success(c, messages)
}

// MarkConversationRead marks received messages from the counterparty
// as read.
func (h *MessageHandler) MarkConversationRead(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	otherID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	if err := h.messagingService.MarkRead(claims.UserID, uint(otherID)); err != nil {
		return utils.InternalError(c, "Failed to mark conversation read")
	}
	return utils.Success(c, fiber.Map{"message": "Conversation marked read"})
}

// GetNotifications lists the caller's notifications plus global ones.
func (h *MessageHandler) GetNotifications(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	notifications, err := h.messagingService.Notifications(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to load notifications")
	}
	return utils.Success(c, notifications)
}

// ClearNotifications marks the caller's notifications read.
func (h *MessageHandler) ClearNotifications(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	if err := h.messagingService.ClearNotifications(claims.UserID); err != nil {
		return utils.InternalError(c, "Failed to clear notifications")
	}
	return utils.Success(c, fiber.Map{"message": "Notifications cleared"})
}
