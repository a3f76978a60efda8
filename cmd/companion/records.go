package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Treylong00/DND-Companion/internal/entities"
	charactersvc "github.com/Treylong00/DND-Companion/internal/services/character"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored character as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, sourceOverrides{})
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.service.GetCharacter(cmd.Context(), &charactersvc.GetCharacterInput{CharacterID: args[0]})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Character)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfg, sourceOverrides{})
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.service.ListCharacters(cmd.Context(), &charactersvc.ListCharactersInput{})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCLASS\tLEVEL")
		for _, c := range out.Characters {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", c.ID, c.Name, c.Class, c.Level)
		}
		return w.Flush()
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, sourceOverrides{})
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.service.DeleteCharacter(cmd.Context(), &charactersvc.DeleteCharacterInput{CharacterID: args[0]}); err != nil {
			return err
		}
		cmd.Printf("Deleted %s\n", args[0])
		return nil
	},
}

var (
	slotsLevel int
	slotsUsed  int
)

var slotsCmd = &cobra.Command{
	Use:   "slots <id>",
	Short: "Set expended spell slots for one level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, sourceOverrides{})
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.service.UpdateSpellSlots(cmd.Context(), &charactersvc.UpdateSpellSlotsInput{
			CharacterID: args[0],
			Level:       slotsLevel,
			Used:        slotsUsed,
		})
		if err != nil {
			return err
		}
		return printSlots(cmd, out.Character.Spellcasting.SpellSlots)
	},
}

func init() {
	slotsCmd.Flags().IntVar(&slotsLevel, "level", 0, "Slot level, 1 to 9 (required)")
	slotsCmd.Flags().IntVar(&slotsUsed, "used", 0, "Expended slots (required)")
	_ = slotsCmd.MarkFlagRequired("level") // nolint:errcheck // safe to ignore in init
	_ = slotsCmd.MarkFlagRequired("used")  // nolint:errcheck // safe to ignore in init
}

func printSlots(cmd *cobra.Command, slots entities.SpellSlots) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tUSED\tTOTAL")
	for level := 1; level <= entities.MaxSlotLevel; level++ {
		usage, _ := slots.Get(level)
		if usage.Total == 0 {
			continue
		}
		fmt.Fprintf(w, "%d\t%d\t%d\n", level, usage.Used, usage.Total)
	}
	return w.Flush()
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
