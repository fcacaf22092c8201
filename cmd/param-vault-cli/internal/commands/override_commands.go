package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/param-vault/param-vault/internal/domain/params"
	"github.com/param-vault/param-vault/internal/infrastructure/persistence"
	"github.com/param-vault/param-vault/internal/pkg/logger"
)

// OverrideCommandHandler holds the override store and methods for inspecting
// persisted parameter overrides via CLI.
type OverrideCommandHandler struct {
	store  params.OverrideAdminStore
	logger logger.Logger
}

// overrideView is the JSON shape overrides are listed in
type overrideView struct {
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// NewOverrideCommandHandler initializes and returns an OverrideCommandHandler
// instance with configured logger and override store.
func NewOverrideCommandHandler() (*OverrideCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	databaseSettings, err := ReadDatabaseSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read database settings: %w", err)
	}

	db, err := persistence.NewDBConnection(*databaseSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	store, err := persistence.NewGormOverrideRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create override repository: %w", err)
	}

	return &OverrideCommandHandler{
		store:  store,
		logger: loggerInstance,
	}, nil
}

// ListOverridesCmd lists persisted overrides, admin-level by default or
// scoped to one user with the user flag
func (h *OverrideCommandHandler) ListOverridesCmd(cmd *cobra.Command, _ []string) {
	userID, err := cmd.Flags().GetString("user")
	if err != nil {
		h.logger.Error("invalid user flag ", err)
		return
	}

	var overrides []params.Override
	if userID == "" {
		overrides, err = h.store.List(cmd.Context())
	} else {
		overrides, err = h.store.ListForUser(cmd.Context(), userID)
	}
	if err != nil {
		h.logger.Error("failed to list overrides ", err)
		return
	}

	views := []overrideView{}
	for _, override := range overrides {
		value, err := params.DecodeValue(override.Value)
		if err != nil {
			h.logger.Error("failed to decode override ", override.Name, " ", err)
			return
		}
		views = append(views, overrideView{
			UserID: override.UserID,
			Name:   override.Name,
			Value:  value,
		})
	}

	viewsJSON, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		h.logger.Error("failed to marshal overrides to JSON ", err)
		return
	}

	h.logger.Info(string(viewsJSON))
}

// GetOverrideCmd reads one persisted override by its fully-qualified name
func (h *OverrideCommandHandler) GetOverrideCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		h.logger.Error("invalid name flag ", err)
		return
	}
	userID, err := cmd.Flags().GetString("user")
	if err != nil {
		h.logger.Error("invalid user flag ", err)
		return
	}

	var encoded string
	if userID == "" {
		encoded, err = h.store.Fetch(cmd.Context(), name)
	} else {
		encoded, err = h.store.FetchForUser(cmd.Context(), userID, name)
	}
	if err != nil {
		if errors.Is(err, params.ErrOverrideNotFound) {
			h.logger.Error("no override stored for ", name)
			return
		}
		h.logger.Error("failed to fetch override ", err)
		return
	}

	value, err := params.DecodeValue(encoded)
	if err != nil {
		h.logger.Error("failed to decode override ", name, " ", err)
		return
	}

	h.logger.Info(name, " = ", value)
}

// SetOverrideCmd writes one override directly into the store. Change
// callbacks registered by the running service are not invoked.
func (h *OverrideCommandHandler) SetOverrideCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		h.logger.Error("invalid name flag ", err)
		return
	}
	value, err := cmd.Flags().GetString("value")
	if err != nil {
		h.logger.Error("invalid value flag ", err)
		return
	}
	userID, err := cmd.Flags().GetString("user")
	if err != nil {
		h.logger.Error("invalid user flag ", err)
		return
	}

	encoded := params.EncodeValue(value)
	if userID == "" {
		err = h.store.Store(cmd.Context(), name, encoded)
	} else {
		err = h.store.StoreForUser(cmd.Context(), userID, name, encoded)
	}
	if err != nil {
		h.logger.Error("failed to store override ", err)
		return
	}

	h.logger.Info("Stored override ", name)
}

// DeleteOverrideCmd removes one persisted override
func (h *OverrideCommandHandler) DeleteOverrideCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		h.logger.Error("invalid name flag ", err)
		return
	}
	userID, err := cmd.Flags().GetString("user")
	if err != nil {
		h.logger.Error("invalid user flag ", err)
		return
	}

	if userID == "" {
		err = h.store.Delete(cmd.Context(), name)
	} else {
		err = h.store.DeleteForUser(cmd.Context(), userID, name)
	}
	if err != nil {
		if errors.Is(err, params.ErrOverrideNotFound) {
			h.logger.Error("no override stored for ", name)
			return
		}
		h.logger.Error("failed to delete override ", err)
		return
	}

	h.logger.Info("Deleted override ", name)
}

// InitOverrideCommands registers override-related commands
func InitOverrideCommands(rootCmd *cobra.Command) error {
	handler, err := NewOverrideCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create override command handler %w", err)
	}

	var listOverridesCmd = &cobra.Command{
		Use:   "list-overrides",
		Short: "List persisted parameter overrides",
		Run:   handler.ListOverridesCmd,
	}
	listOverridesCmd.Flags().StringP("user", "", "", "List overrides of this user instead of admin-level ones")
	rootCmd.AddCommand(listOverridesCmd)

	var getOverrideCmd = &cobra.Command{
		Use:   "get-override",
		Short: "Read one persisted parameter override",
		Run:   handler.GetOverrideCmd,
	}
	getOverrideCmd.Flags().StringP("name", "", "", "Fully-qualified parameter name, for example webmail.display_mode")
	getOverrideCmd.Flags().StringP("user", "", "", "Read the override of this user instead of the admin-level one")
	rootCmd.AddCommand(getOverrideCmd)

	var setOverrideCmd = &cobra.Command{
		Use:   "set-override",
		Short: "Write one parameter override",
		Run:   handler.SetOverrideCmd,
	}
	setOverrideCmd.Flags().StringP("name", "", "", "Fully-qualified parameter name, for example webmail.display_mode")
	setOverrideCmd.Flags().StringP("value", "", "", "Value to store")
	setOverrideCmd.Flags().StringP("user", "", "", "Write the override of this user instead of the admin-level one")
	rootCmd.AddCommand(setOverrideCmd)

	var deleteOverrideCmd = &cobra.Command{
		Use:   "delete-override",
		Short: "Delete one persisted parameter override",
		Run:   handler.DeleteOverrideCmd,
	}
	deleteOverrideCmd.Flags().StringP("name", "", "", "Fully-qualified parameter name, for example webmail.display_mode")
	deleteOverrideCmd.Flags().StringP("user", "", "", "Delete the override of this user instead of the admin-level one")
	rootCmd.AddCommand(deleteOverrideCmd)

	return nil
}
