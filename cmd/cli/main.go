package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/royalmatch/casino"
	"github.com/royalmatch/casino/protocol"
)

var commands = map[string]protocol.Cmd{
	"build":   protocol.Build,
	"pair":    protocol.Pair,
	"capture": protocol.Capture,
	"trail":   protocol.Trail,
}

// A hotseat game of Casino for two players sharing a terminal.
func main() {
	reader := bufio.NewReader(os.Stdin)

	game := casino.NewCasino(casino.CasinoOpts{Rules: casino.DefaultRules()})
	info := []protocol.PlayerInfo{
		{PlayerID: "p1", Name: readName(reader, "Player 1")},
		{PlayerID: "p2", Name: readName(reader, "Player 2")},
	}

	if err := game.Start(info); err != nil {
		log.Fatal(err)
	}

	msgs, err := game.Next()
	if err != nil {
		log.Fatal(err)
	}

	for !game.GameOver() {
		prompt := promptMessage(msgs)
		display(prompt)

		cmd, card, selection, err := readAction(reader)
		if err != nil {
			fmt.Println(err)
			continue
		}

		msgs, err = game.ReceiveResponse([]casino.InboundMessage{{
			PlayerID:  prompt.PlayerID,
			Command:   cmd,
			Card:      card,
			Selection: selection,
		}})
		if err != nil {
			fmt.Println(err)
			continue
		}
	}

	fmt.Println(msgs[0].Message)
}

func readName(reader *bufio.Reader, seat string) string {
	fmt.Printf("%s, what's your name? ", seat)
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		name = seat
	}
	return name
}

func promptMessage(msgs []casino.OutboundMessage) casino.OutboundMessage {
	for _, m := range msgs {
		if m.ShouldRespond {
			return m
		}
	}
	return msgs[0]
}

func display(msg casino.OutboundMessage) {
	fmt.Println()
	fmt.Println(msg.Message)
	fmt.Println("Table:")
	for _, item := range msg.Table {
		names := []string{}
		for _, c := range item.Cards {
			names = append(names, c.String())
		}
		fmt.Printf("  [%d] %s (%s)\n", item.ID, item.Kind, strings.Join(names, ", "))
	}
	fmt.Println("Your hand:")
	for i, c := range msg.Hand {
		fmt.Printf("  [%d] %s\n", i, c)
	}
	fmt.Println("Play with: <build|pair|capture|trail> <card index> [item ids...]")
}

func readAction(reader *bufio.Reader) (protocol.Cmd, int, []int, error) {
	fmt.Print("> ")
	line, _ := reader.ReadString('\n')
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return protocol.Null, 0, nil, fmt.Errorf("need at least a command and a card index")
	}

	cmd, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return protocol.Null, 0, nil, fmt.Errorf("unknown command %q", fields[0])
	}

	card, err := strconv.Atoi(fields[1])
	if err != nil {
		return protocol.Null, 0, nil, fmt.Errorf("bad card index %q", fields[1])
	}

	selection := []int{}
	for _, f := range fields[2:] {
		id, err := strconv.Atoi(f)
		if err != nil {
			return protocol.Null, 0, nil, fmt.Errorf("bad item id %q", f)
		}
		selection = append(selection, id)
	}

	return cmd, card, selection, nil
}
