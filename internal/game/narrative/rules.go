package narrative

import (
	"eldoria/internal/game"
	"eldoria/internal/game/events"
	"eldoria/internal/game/input"
	"eldoria/internal/game/voice"
)

func defaultFallbacks() map[input.Category]string {
	return map[input.Category]string{
		input.Movement:        "You look around, but don't see a clear path in that direction.",
		input.Dialogue:        "There's no one here who matches that description.",
		input.Combat:          "There's nothing here that warrants drawing your blade.",
		input.ItemInteraction: "You don't see anything like that worth taking here.",
		input.Observation:     "You take a moment to study your surroundings, but nothing new catches your eye.",
		input.Other:           "You consider your options. The village bustles around you, indifferent to your indecision.",
	}
}

func defaultRules() map[tableKey][]rule {
	t := map[tableKey][]rule{}

	add := func(location string, category input.Category, r rule) {
		key := tableKey{location: location, category: category}
		t[key] = append(t[key], r)
	}

	// --- village entrance ---

	add(game.LocVillageEntrance, input.Movement, rule{
		keywords: []string{"inn"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "You make your way through the bustling village square, passing by merchants setting up their stalls for the festival. The wooden sign of 'The Prancing Pony' inn swings gently in the breeze as you approach.",
				Events: []events.Event{
					events.Moved{From: game.LocVillageEntrance, To: game.LocVillageInn},
				},
			}
		},
	})

	add(game.LocVillageEntrance, input.Movement, rule{
		keywords: []string{"market"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "You walk toward the market district, where colorful tents and stalls are being prepared for the upcoming festival. The air is filled with the scent of fresh bread and spices.",
				Events: []events.Event{
					events.Moved{From: game.LocVillageEntrance, To: game.LocVillageMarket},
				},
			}
		},
	})

	add(game.LocVillageEntrance, input.Dialogue, rule{
		keywords: []string{"guard", "harlon"},
		respond:  guardConversation,
	})

	add(game.LocVillageEntrance, input.Dialogue, rule{
		keywords: []string{"innkeeper", "mabel"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "There's no innkeeper here at the village entrance. You'll need to head to the inn first.",
			}
		},
	})

	add(game.LocVillageEntrance, input.Combat, rule{
		keywords: []string{"guard", "harlon"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "You square up to Guard Harlon. He plants his halberd, unimpressed, and the nearby villagers go quiet. Starting a brawl with the village watch on festival morning would end poorly, and you lower your fists.",
				Events: []events.Event{
					events.DispositionChanged{NPCID: game.NPCVillageGuard, Delta: -10},
				},
			}
		},
	})

	add(game.LocVillageEntrance, input.Observation, rule{
		respond: func(game.WorldState) Result {
			return Result{
				Text: "The village of Oakvale welcomes you with its open wooden gates. Guards stand at attention, eyeing visitors with cautious gazes. Colorful banners hang from buildings, announcing the upcoming harvest festival. To the north, you can see the village inn, and to the east lies the market district. Villagers bustle about, preparing for the festivities.",
				Events: []events.Event{
					events.Observed{LocationID: game.LocVillageEntrance},
				},
			}
		},
	})

	// --- village inn ---

	add(game.LocVillageInn, input.Movement, rule{
		keywords: []string{"entrance", "gate", "leave", "outside"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "You push open the inn's heavy door and step back into the square, the noise of festival preparations washing over you as you return to the village entrance.",
				Events: []events.Event{
					events.Moved{From: game.LocVillageInn, To: game.LocVillageEntrance},
				},
			}
		},
	})

	add(game.LocVillageInn, input.Movement, rule{
		keywords: []string{"market"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "You leave the warmth of the inn and cut across the square toward the market district, weaving between carts piled with festival goods.",
				Events: []events.Event{
					events.Moved{From: game.LocVillageInn, To: game.LocVillageMarket},
				},
			}
		},
	})

	add(game.LocVillageInn, input.Dialogue, rule{
		keywords: []string{"innkeeper", "mabel"},
		respond:  innkeeperConversation,
	})

	add(game.LocVillageInn, input.Observation, rule{
		respond: func(game.WorldState) Result {
			return Result{
				Text: "The Prancing Pony is warm and smells of woodsmoke and stew. Mabel, the innkeeper, polishes mugs behind the bar while a handful of early patrons trade festival gossip at the long tables.",
				Events: []events.Event{
					events.Observed{LocationID: game.LocVillageInn},
				},
			}
		},
	})

	// --- village market ---

	add(game.LocVillageMarket, input.Movement, rule{
		keywords: []string{"entrance", "gate", "leave"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "You thread your way out of the market crowds and back to the village entrance, where Guard Harlon still keeps his post by the gate.",
				Events: []events.Event{
					events.Moved{From: game.LocVillageMarket, To: game.LocVillageEntrance},
				},
			}
		},
	})

	add(game.LocVillageMarket, input.Movement, rule{
		keywords: []string{"inn"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "You cross the square toward the inn, the smell of spices giving way to woodsmoke as 'The Prancing Pony' comes into view.",
				Events: []events.Event{
					events.Moved{From: game.LocVillageMarket, To: game.LocVillageInn},
				},
			}
		},
	})

	add(game.LocVillageMarket, input.Dialogue, rule{
		keywords: []string{"merchant", "galen"},
		respond:  merchantConversation,
	})

	add(game.LocVillageMarket, input.ItemInteraction, rule{
		keywords: []string{"apple"},
		respond: func(game.WorldState) Result {
			return Result{
				Text: "A fruit seller waves you over and presses a ripe apple into your hand. \"For luck at the festival,\" she says, refusing your coin.",
				Events: []events.Event{
					events.ItemFound{Item: "apple", Where: game.LocVillageMarket},
				},
			}
		},
	})

	add(game.LocVillageMarket, input.Observation, rule{
		respond: func(game.WorldState) Result {
			return Result{
				Text: "The market district is a maze of half-built stalls and bright awnings. Merchant Galen paces in front of his near-empty stand, wringing his hands, while porters haul crates of festival goods past him.",
				Events: []events.Event{
					events.Observed{LocationID: game.LocVillageMarket},
				},
			}
		},
	})

	return t
}

func guardConversation(s game.WorldState) Result {
	guard := s.NPCs[game.NPCVillageGuard]

	result := Result{
		Text: "You approach Guard Harlon, who stands at attention by the village gate.",
		Dialogue: []DialogueLine{{
			Speaker: guard.Name,
			Text:    "Welcome to Oakvale, traveler. Here for the festival, are you? Keep your nose clean while you're here.",
			Profile: voice.ProfileNPCMale,
		}},
		Events: []events.Event{
			events.SpokeWith{NPCID: game.NPCVillageGuard, Name: guard.Name},
		},
	}

	// The merchant hint is told at most once.
	if !guard.HasMemory(game.TokenMentionedMerchant) {
		result.Dialogue = append(result.Dialogue, DialogueLine{
			Speaker: guard.Name,
			Text:    "If you're looking for work, you might want to speak with Merchant Galen. He's been fretting about a missing shipment all morning. You'll find him at the market.",
			Profile: voice.ProfileNPCMale,
		})
		result.Events = append(result.Events, events.NPCMention{
			NPCID:   game.NPCVillageGuard,
			Token:   game.TokenMentionedMerchant,
			QuestID: game.QuestMissingShipment,
			Text:    "Guard mentioned merchant's missing shipment",
		})
	}

	return result
}

func innkeeperConversation(s game.WorldState) Result {
	innkeeper := s.NPCs[game.NPCInnkeeper]

	result := Result{
		Text: "Mabel looks up from the mug she's polishing and gives you an appraising nod.",
		Dialogue: []DialogueLine{{
			Speaker: innkeeper.Name,
			Text:    "New face in Oakvale! Sit wherever you like, we've stew on and rooms upstairs if you're staying for the festival.",
			Profile: voice.ProfileNPCFemale,
		}},
		Events: []events.Event{
			events.SpokeWith{NPCID: game.NPCInnkeeper, Name: innkeeper.Name},
		},
	}

	if !innkeeper.HasMemory(game.TokenSharedRumor) {
		result.Dialogue = append(result.Dialogue, DialogueLine{
			Speaker: innkeeper.Name,
			Text:    "Between you and me, travelers have been whispering about strange lights out on the old forest road at night. Might be nothing. Might be why Galen's wagon never arrived.",
			Profile: voice.ProfileNPCFemale,
		})
		result.Events = append(result.Events, events.NPCMention{
			NPCID: game.NPCInnkeeper,
			Token: game.TokenSharedRumor,
			Text:  "Mabel shared a rumor about the forest road",
		})
	}

	return result
}

func merchantConversation(s game.WorldState) Result {
	merchant := s.NPCs[game.NPCMerchant]

	result := Result{
		Text: "Merchant Galen breaks off his pacing the moment he spots you, hurrying over with the look of a man clutching at his last hope.",
		Dialogue: []DialogueLine{{
			Speaker: merchant.Name,
			Text:    "You have the look of someone who can handle the road. My festival shipment never arrived. A whole wagon of goods, vanished between here and the river crossing!",
			Profile: voice.ProfileNPCMale,
		}},
		Events: []events.Event{
			events.SpokeWith{NPCID: game.NPCMerchant, Name: merchant.Name},
		},
	}

	if !merchant.HasMemory(game.TokenGaveShipmentTask) {
		result.Dialogue = append(result.Dialogue, DialogueLine{
			Speaker: merchant.Name,
			Text:    "Find my shipment and you'll be paid well, I swear it. Ask around, someone must have seen that wagon.",
			Profile: voice.ProfileNPCMale,
		})
		result.Events = append(result.Events,
			events.NPCMention{
				NPCID:   game.NPCMerchant,
				Token:   game.TokenGaveShipmentTask,
				QuestID: game.QuestMissingShipment,
				Text:    "Merchant Galen asked you to find his shipment",
			},
			events.ObjectiveCompleted{
				QuestID:     game.QuestMissingShipment,
				ObjectiveID: "talk_to_merchant",
			},
		)
	}

	return result
}
