package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gamenight/internal/common"
	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"

	"github.com/rs/zerolog/log"
)

func (bot *Bot) onGameSetupSubmit(ctx context.Context, ix contract.Interaction, intent customid.Intent) error {

	setup, ok := intent.(customid.GameSetup)
	if !ok {
		return fmt.Errorf("unexpected intent %T", intent)
	}
	if err := ix.Defer(ctx); err != nil {
		return err
	}
	server, err := bot.serverFor(ctx, ix, setup)
	if err != nil {
		return err
	}

	game := &entity.Game{
		ServerID:    server.ID,
		Name:        strings.TrimSpace(ix.Value(inputName)),
		ShortName:   strings.TrimSpace(ix.Value(inputShortName)),
		Description: strings.TrimSpace(ix.Value(inputDescription)),
		RoleID:      setup.RoleID,
	}
	if game.Name == "" || game.ShortName == "" {
		return respond(ctx, ix, InputNotValid("A game needs a name and a short name"))
	}
	if game.MinPlayers, err = playerCount(ix.Value(inputMinPlayers)); err != nil {
		return respond(ctx, ix, InputNotValid(err.Error()))
	}
	if game.MaxPlayers, err = playerCount(ix.Value(inputMaxPlayers)); err != nil {
		return respond(ctx, ix, InputNotValid(err.Error()))
	}
	if game.MinPlayers > 0 && game.MaxPlayers > 0 && game.MinPlayers > game.MaxPlayers {
		return respond(ctx, ix, InputNotValid("The minimum number of players cannot exceed the maximum"))
	}

	createdRole := false
	if game.RoleID == "" {
		if game.RoleID, err = bot.platform.CreateRole(ctx, setup.GuildID, game.ShortName); err != nil {
			log.Error().Err(err).Msg(fmt.Sprintf("Could not create role for game %s", game.Name))
			return respond(ctx, ix, GameCreationFailed())
		}
		createdRole = true
	}

	if err := bot.dm.Game().Create(ctx, game); err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Could not save game %s", game.Name))
		if createdRole {
			common.BestEffort(ctx, "delete game role", func(ctx context.Context) error {
				return bot.platform.DeleteRole(ctx, setup.GuildID, game.RoleID)
			})
		}
		return respond(ctx, ix, GameCreationFailed())
	}

	log.Info().Msg(fmt.Sprintf("Game %s (%s) added to guild %s", game.Name, game.ID, setup.GuildID))
	return respond(ctx, ix, GameCreated(game))
}

// playerCount parses an optional player count; empty means not specified.
func playerCount(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("`%s` is not a valid number of players", input)
	}
	return n, nil
}
