// Package main is the entry point for the engine CLI
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "Item and inventory economy engine",
	Long:  `Engine hosts the item, inventory and character-stat economy for the game server: catalog-backed item creation, stackable inventories, equipment slots and procedural equipment generation.`,
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(demoCmd)
}
