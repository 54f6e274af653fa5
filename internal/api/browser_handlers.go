package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/lp-factory/internal/browserprofile"
	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

func browserNotConfigured(c *fiber.Ctx, what string) error {
	return c.Status(400).JSON(fiber.Map{"error": "Browser " + what + " not configured"})
}

// forwardBrowserResponse relays the upstream status and body verbatim
func forwardBrowserResponse(c *fiber.Ctx, resp *browserprofile.Response) error {
	c.Set("Content-Type", "application/json")
	return c.Status(resp.Status).Send(resp.Body)
}

// browserToken loads the stored automation token, empty when unset
func (s *APIServer) browserToken() (string, error) {
	return s.settingsService.Get(services.SettingBrowserToken)
}

// handleBrowserSignin exchanges the stored credentials for a token and
// persists it for the rest of the integration.
func (s *APIServer) handleBrowserSignin(c *fiber.Ctx) error {
	email, err := s.settingsService.Get(services.SettingBrowserEmail)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	password, err := s.settingsService.Get(services.SettingBrowserPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if email == "" || password == "" {
		return browserNotConfigured(c, "email/password")
	}

	resp, token, err := s.browserClient.Signin(c.Context(), email, password)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	if token != "" {
		if err := s.settingsService.Set(services.SettingBrowserToken, token); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return forwardBrowserResponse(c, resp)
}

// handleBrowserRefreshToken refreshes and persists the stored token
func (s *APIServer) handleBrowserRefreshToken(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	resp, fresh, err := s.browserClient.RefreshToken(c.Context(), token)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	if fresh != "" {
		if err := s.settingsService.Set(services.SettingBrowserToken, fresh); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return forwardBrowserResponse(c, resp)
}

// handleBrowserListProfiles forwards the upstream profile list
func (s *APIServer) handleBrowserListProfiles(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	resp, err := s.browserClient.ListProfiles(c.Context(), token, queryValues(c))
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardBrowserResponse(c, resp)
}

type browserCreateProfileRequest struct {
	Name        string `json:"name"`
	FolderID    string `json:"folder_id"`
	BrowserType string `json:"browser_type"`
	Parameters  struct {
		Fingerprint browserprofile.Fingerprint `json:"fingerprint"`
		Proxy       browserprofile.Proxy       `json:"proxy"`
	} `json:"parameters"`
}

// handleBrowserCreateProfile creates a remote profile and mirrors each new
// id as a local ops profile.
func (s *APIServer) handleBrowserCreateProfile(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	var req browserCreateProfileRequest
	_ = json.Unmarshal(c.Body(), &req)

	resp, ids, err := s.browserClient.CreateProfile(c.Context(), token, payload)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	if resp.Status >= 200 && resp.Status < 300 && len(ids) > 0 {
		folderID := req.FolderID
		if folderID == "" {
			folderID, _ = s.settingsService.Get(services.SettingBrowserFolderID)
		}
		var rawParameters models.JSON
		if m, ok := payload["parameters"].(map[string]any); ok {
			rawParameters = models.JSON(m)
		}
		for _, remoteID := range ids {
			profile := &models.Profile{
				Name:           req.Name,
				RemoteID:       remoteID,
				RemoteFolderID: folderID,
				BrowserType:    req.BrowserType,
				OS:             req.Parameters.Fingerprint.OS,
				ProxyHost:      req.Parameters.Proxy.Host,
				ProxyPort:      req.Parameters.Proxy.Port,
				ProxyUser:      req.Parameters.Proxy.Username,
				ProxyPass:      req.Parameters.Proxy.Password,
				ProxyType:      req.Parameters.Proxy.Type,
				FingerprintOS:  req.Parameters.Fingerprint.OS,
				Parameters:     rawParameters,
				RemoteStatus:   "stopped",
				Status:         "active",
			}
			if err := s.opsService.CreateMirroredProfile(profile); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": err.Error()})
			}
			label := req.Name
			if label == "" {
				label = remoteID
			}
			if err := s.opsService.AppendLog(fmt.Sprintf("Browser profile created: %s", label)); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": err.Error()})
			}
		}
	}
	return forwardBrowserResponse(c, resp)
}

// handleBrowserProfileAction starts or stops a remote profile and mirrors
// the new status and timestamp locally.
func (s *APIServer) handleBrowserProfileAction(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	remoteID := c.Params("id")
	action := c.Params("action")
	resp, err := s.browserClient.ProfileAction(c.Context(), token, remoteID, action)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if resp.Status >= 200 && resp.Status < 300 {
		now := time.Now()
		cols := map[string]any{}
		if action == "start" {
			cols["remote_status"] = "running"
			cols["last_started_at"] = now
		} else {
			cols["remote_status"] = "stopped"
			cols["last_stopped_at"] = now
		}
		if err := s.opsService.UpdateProfileByRemoteID(remoteID, cols); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if err := s.opsService.AppendLog(fmt.Sprintf("Browser profile %s: %s", action, remoteID)); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return forwardBrowserResponse(c, resp)
}

type browserDeleteProfilesRequest struct {
	IDs []string `json:"ids"`
}

// handleBrowserDeleteProfiles removes remote profiles and their mirrored
// local rows.
func (s *APIServer) handleBrowserDeleteProfiles(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	var req browserDeleteProfilesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	resp, err := s.browserClient.RemoveProfiles(c.Context(), token, req.IDs)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	if resp.Status >= 200 && resp.Status < 300 && len(req.IDs) > 0 {
		if _, err := s.opsService.DeleteProfilesByRemoteIDs(req.IDs); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if err := s.opsService.AppendLog(fmt.Sprintf("Browser profiles deleted: %d profiles", len(req.IDs))); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return forwardBrowserResponse(c, resp)
}

// handleBrowserSyncProfiles reconciles the mirrored profiles with the
// remote folder: missing remotes are inserted, vanished ones are marked
// deleted.
func (s *APIServer) handleBrowserSyncProfiles(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}
	folderID, err := s.settingsService.Get(services.SettingBrowserFolderID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if folderID == "" {
		return browserNotConfigured(c, "folder ID")
	}

	remote, err := s.browserClient.ListAllFolderProfiles(c.Context(), token, folderID)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	local, err := s.opsService.ListProfiles()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	localByRemoteID := make(map[string]models.Profile, len(local))
	for _, p := range local {
		if p.RemoteID != "" {
			localByRemoteID[p.RemoteID] = p
		}
	}
	remoteIDs := make(map[string]bool, len(remote))
	for _, p := range remote {
		remoteIDs[p.UUID] = true
	}

	created, deleted := 0, 0

	for _, p := range remote {
		if _, ok := localByRemoteID[p.UUID]; ok {
			continue
		}
		remoteFolder := p.FolderID
		if remoteFolder == "" {
			remoteFolder = folderID
		}
		profile := &models.Profile{
			Name:           p.Name,
			RemoteID:       p.UUID,
			RemoteFolderID: remoteFolder,
			BrowserType:    p.BrowserType,
			OS:             p.Parameters.Fingerprint.OS,
			ProxyHost:      p.Parameters.Proxy.Host,
			ProxyPort:      p.Parameters.Proxy.Port,
			ProxyUser:      p.Parameters.Proxy.Username,
			ProxyPass:      p.Parameters.Proxy.Password,
			ProxyType:      p.Parameters.Proxy.Type,
			FingerprintOS:  p.Parameters.Fingerprint.OS,
			Parameters:     parametersJSON(p.Parameters),
			RemoteStatus:   "stopped",
			Status:         "active",
		}
		if err := s.opsService.CreateMirroredProfile(profile); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		created++
	}

	for _, p := range local {
		if p.RemoteID != "" && !remoteIDs[p.RemoteID] {
			if err := s.opsService.UpdateProfileByRemoteID(p.RemoteID, map[string]any{"status": "deleted"}); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": err.Error()})
			}
			deleted++
		}
	}

	if err := s.opsService.AppendLog(fmt.Sprintf("Browser sync: created=%d, deleted=%d", created, deleted)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "created": created, "deleted": deleted})
}

// handleBrowserActiveProfiles lists mirrored profiles whose remote browser
// is running.
func (s *APIServer) handleBrowserActiveProfiles(c *fiber.Ctx) error {
	profiles, err := s.opsService.ListActiveProfiles()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(profiles)
}

// parametersJSON converts a typed parameters block into the stored column
// form.
func parametersJSON(p browserprofile.Parameters) models.JSON {
	encoded, err := json.Marshal(p)
	if err != nil {
		return nil
	}
	var m models.JSON
	if err := json.Unmarshal(encoded, &m); err != nil {
		return nil
	}
	return m
}

// handleBrowserCloneProfile duplicates a remote profile upstream
func (s *APIServer) handleBrowserCloneProfile(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	resp, err := s.browserClient.CloneProfile(c.Context(), token, c.Params("id"))
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardBrowserResponse(c, resp)
}

// handleBrowserListFolders forwards the upstream workspace folder list
func (s *APIServer) handleBrowserListFolders(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	resp, err := s.browserClient.ListFolders(c.Context(), token)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}
	return forwardBrowserResponse(c, resp)
}

// handleBrowserAutomationToken issues a long-lived automation token and
// persists it for headless use.
func (s *APIServer) handleBrowserAutomationToken(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	resp, automationToken, err := s.browserClient.AutomationToken(c.Context(), token)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	if resp.Status >= 200 && resp.Status < 300 && automationToken != "" {
		if err := s.settingsService.Set(services.SettingBrowserAutomationToken, automationToken); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if err := s.opsService.AppendLog("Browser automation token generated"); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return forwardBrowserResponse(c, resp)
}

// handleBrowserUpdateProfile patches a remote profile and mirrors the
// changed name, proxy and fingerprint columns locally.
func (s *APIServer) handleBrowserUpdateProfile(c *fiber.Ctx) error {
	token, err := s.browserToken()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if token == "" {
		return browserNotConfigured(c, "token")
	}

	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	var req struct {
		ProfileID  string `json:"profile_id"`
		Name       string `json:"name"`
		Parameters struct {
			Proxy       browserprofile.Proxy       `json:"proxy"`
			Fingerprint browserprofile.Fingerprint `json:"fingerprint"`
		} `json:"parameters"`
	}
	_ = json.Unmarshal(c.Body(), &req)

	resp, err := s.browserClient.UpdateProfile(c.Context(), token, payload)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": err.Error()})
	}

	if resp.Status >= 200 && resp.Status < 300 && req.ProfileID != "" {
		cols := map[string]any{}
		if req.Name != "" {
			cols["name"] = req.Name
		}
		if req.Parameters.Proxy.Host != "" {
			cols["proxy_host"] = req.Parameters.Proxy.Host
		}
		if req.Parameters.Proxy.Port != "" {
			cols["proxy_port"] = req.Parameters.Proxy.Port
		}
		if req.Parameters.Proxy.Username != "" {
			cols["proxy_user"] = req.Parameters.Proxy.Username
		}
		if req.Parameters.Proxy.Password != "" {
			cols["proxy_pass"] = req.Parameters.Proxy.Password
		}
		if req.Parameters.Proxy.Type != "" {
			cols["proxy_type"] = req.Parameters.Proxy.Type
		}
		if req.Parameters.Fingerprint.OS != "" {
			cols["fingerprint_os"] = req.Parameters.Fingerprint.OS
		}
		if len(cols) > 0 {
			if err := s.opsService.UpdateProfileByRemoteID(req.ProfileID, cols); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": err.Error()})
			}
		}
		if err := s.opsService.AppendLog(fmt.Sprintf("Browser profile updated: %s", req.ProfileID)); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return forwardBrowserResponse(c, resp)
}
