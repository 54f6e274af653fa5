package api

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/lp-factory/internal/cardissuer"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

// cardIssuerClient builds a client from stored settings, or reports that
// the integration is unconfigured.
func (s *APIServer) cardIssuerClient() (*cardissuer.Client, error) {
	token, err := s.settingsService.Get(services.SettingCardToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, services.ErrNotConfigured
	}
	teamUUID, err := s.settingsService.Get(services.SettingCardTeamUUID)
	if err != nil {
		return nil, err
	}
	return s.cardClient(token, teamUUID), nil
}

// forwardCardResponse relays the upstream status and body verbatim
func forwardCardResponse(c *fiber.Ctx, resp *cardissuer.Response) error {
	c.Set("Content-Type", "application/json")
	return c.Status(resp.Status).Send(resp.Body)
}

func cardNotConfigured(c *fiber.Ctx) error {
	return c.Status(400).JSON(fiber.Map{"error": "Card issuer token not configured"})
}

func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}

func (s *APIServer) handleListCards(c *fiber.Ctx) error {
	client, err := s.cardIssuerClient()
	if err == services.ErrNotConfigured {
		return cardNotConfigured(c)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	resp, err := client.ListCards(c.Context(), queryValues(c))
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardCardResponse(c, resp)
}

func (s *APIServer) handleCreateCard(c *fiber.Ctx) error {
	client, err := s.cardIssuerClient()
	if err == services.ErrNotConfigured {
		return cardNotConfigured(c)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	resp, err := client.CreateCard(c.Context(), payload)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardCardResponse(c, resp)
}

func (s *APIServer) handleCardAction(c *fiber.Ctx) error {
	client, err := s.cardIssuerClient()
	if err == services.ErrNotConfigured {
		return cardNotConfigured(c)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	resp, err := client.CardAction(c.Context(), c.Params("uuid"), c.Params("action"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardCardResponse(c, resp)
}

func (s *APIServer) handleCardLimit(c *fiber.Ctx) error {
	client, err := s.cardIssuerClient()
	if err == services.ErrNotConfigured {
		return cardNotConfigured(c)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	resp, err := client.ChangeLimit(c.Context(), c.Params("uuid"), payload)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardCardResponse(c, resp)
}

func (s *APIServer) handleCardMeta(c *fiber.Ctx) error {
	client, err := s.cardIssuerClient()
	if err == services.ErrNotConfigured {
		return cardNotConfigured(c)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	resp, err := client.Meta(c.Context(), c.Params("resource"), queryValues(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardCardResponse(c, resp)
}

func (s *APIServer) handleCreateBilling(c *fiber.Ctx) error {
	client, err := s.cardIssuerClient()
	if err == services.ErrNotConfigured {
		return cardNotConfigured(c)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	resp, err := client.CreateBillingAddress(c.Context(), payload)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardCardResponse(c, resp)
}
