package main

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "ch8asm"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "assemble",
		Brief: "Assemble a source file into a CHIP-8 binary",
		Description: "Preprocess and encode the source file, writing the" +
			" big-endian program image to the -o file, or to the source" +
			" name with a .ch8 extension.",
		Usage: "assemble <source.asm>",
		Data:  (*app).cmdAssemble,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "preprocess",
		Brief: "Print the preprocessed source",
		Description: "Resolve aliases, sprites, free memory offsets and" +
			" labels, and print the normalized instruction lines.",
		Usage: "preprocess <source.asm>",
		Data:  (*app).cmdPreprocess,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "disassemble",
		Brief:       "List the instructions of a CHIP-8 binary",
		Description: "Decode a program image loaded at the origin setting.",
		Usage:       "disassemble <program.ch8>",
		Data:        (*app).cmdDisassemble,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "settings",
		Brief:       "Display the effective settings",
		Description: "Display the settings after the -c file and -s overrides.",
		Usage:       "settings",
		Data:        (*app).cmdSettings,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Brief:       "Display the commands",
		Description: "Display the available commands.",
		Usage:       "help",
		Data:        (*app).cmdHelp,
	})
	cmds = root
}
