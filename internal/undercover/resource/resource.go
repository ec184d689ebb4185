package resource

import (
	"fmt"

	"github.com/enescakir/emoji"
)

const (
	ProjectName    = "undercover"
	ProjectVersion = "0.1.0"
)

// Avatars is larger than the roster cap so every seat gets its own face.
var Avatars = []string{
	emoji.Robot.String(),
	emoji.Unicorn.String(),
	emoji.Alien.String(),
	emoji.Ninja.String(),
	emoji.Flamingo.String(),
	emoji.Snail.String(),
	emoji.Rocket.String(),
	emoji.GemStone.String(),
	emoji.Star.String(),
	emoji.GameDie.String(),
	emoji.VideoGame.String(),
	emoji.Joystick.String(),
	emoji.Guitar.String(),
	emoji.ChristmasTree.String(),
	emoji.FourLeafClover.String(),
	emoji.Rainbow.String(),
	emoji.Fire.String(),
	emoji.Trophy.String(),
	emoji.Bomb.String(),
	emoji.SeeNoEvilMonkey.String(),
	emoji.PartyingFace.String(),
	emoji.Bowling.String(),
	emoji.Cinema.String(),
	emoji.Hammer.String(),
}

var (
	TextGreeting = fmt.Sprintf("%s %s v%s, one phone, one secret word each. Type %q for commands.\n",
		emoji.Joystick, ProjectName, ProjectVersion, "help")

	TextHome              = fmt.Sprintf("%s Home. Type %q to prepare a game.", emoji.VideoGame, "setup")
	TextSetupHeader       = fmt.Sprintf("%s Setup", emoji.Gear)
	TextNeedPlayers       = "At least 3 players are needed to start."
	TextUndercoverClamped = "Undercover lowered to %d for %d players."
	TextRevealPass        = fmt.Sprintf("%s Pass the phone to %%s %%s. Type %q to see your word.", emoji.Loudspeaker, "show")
	TextRevealWord        = fmt.Sprintf("%s Your word: %%s", emoji.CardIndex)
	TextRevealNoWord      = fmt.Sprintf("%s You are Mr. White. You have no word, blend in!", emoji.WomanGesturingNo)
	TextRevealNext        = fmt.Sprintf("Hide it and type %q.", "next")
	TextDiscussHeader     = fmt.Sprintf("%s Discussion. %%s %%s starts, going %%s. Time: %%s", emoji.Stopwatch)
	TextDiscussVote       = fmt.Sprintf("Type %q when the table is ready to vote.", "vote")
	TextVoteHeader        = fmt.Sprintf("%s Vote. Type %q with the number of the player the table chose.", emoji.ChequeredFlag, "eliminate <n>")
	TextSummaryHeader     = fmt.Sprintf("%s %%s %%s was eliminated, they were %%s.", emoji.CrossMark)
	TextSummaryLeft       = "%d %s left, %d of them against the civilians."
	TextSummaryNext       = fmt.Sprintf("Type %q for the next round.", "continue")
	TextGuessHeader       = fmt.Sprintf("%s Mr. White %%s %%s was caught! Say the civilian word out loud.", emoji.Bookmark)
	TextGuessPrompt       = fmt.Sprintf("Was it right? Type %q or %q.", "guess yes", "guess no")
	TextResultHeader      = fmt.Sprintf("%s %%s", emoji.Trophy)
	TextResultWords       = "Civilians: %s, Undercover: %s"
	TextResultAgain       = fmt.Sprintf("Type %q to play again with the same table.", "reset")
	TextTimeUp            = fmt.Sprintf("%s Time is up!", emoji.Stopwatch)
	TextUnknownCmd        = fmt.Sprintf("%s Unknown command, type %q.", emoji.CrossMark, "help")
	TextIgnored           = fmt.Sprintf("%s Not now.", emoji.ThumbsDown)
	TextRosterSaved       = fmt.Sprintf("%s Roster %%q saved.", emoji.CheckMarkButton)
	TextRosterLoaded      = fmt.Sprintf("%s Roster %%q loaded, %%d players.", emoji.CheckMarkButton)
	TextRosterDeleted     = fmt.Sprintf("%s Roster %%q deleted.", emoji.CheckMarkButton)
	TextRosterMissing     = fmt.Sprintf("%s Roster %%q not found.", emoji.CrossMark)
	TextRestored          = fmt.Sprintf("%s Unfinished game restored.", emoji.Rocket)
	TextBye               = fmt.Sprintf("%s Bye!", emoji.PartyPopper)
)

var (
	RoleCivilian   = fmt.Sprintf("%s Civilian", emoji.ThumbsUp)
	RoleUndercover = fmt.Sprintf("%s Undercover", emoji.Ninja)
	RoleMrWhite    = fmt.Sprintf("%s Mr. White", emoji.Alien)

	WinCivilian   = fmt.Sprintf("%s Civilians win!", emoji.ClappingHands)
	WinUndercover = fmt.Sprintf("%s Undercover wins!", emoji.Ninja)
	WinMrWhite    = fmt.Sprintf("%s Mr. White guessed the word and wins!", emoji.PartyingFace)
)

const TextHelp = `Commands:
  setup                  open the game setup
  home                   back to the home screen
  add <name>             add a player
  rm <n>                 remove player number n
  undercover <n>         number of undercover players
  mrwhite on|off         include Mr. White
  category <name|ALL>    word category
  categories             list the categories
  start                  deal roles and words
  show                   show the word of the player holding the phone
  next                   pass the phone on
  vote                   end the discussion
  eliminate <n>          eliminate player number n
  guess yes|no           judge Mr. White's guess
  continue               next round
  reset                  back to setup, same players
  roster save|load|delete <name>
  roster list            list the saved rosters
  status                 print the current screen
  help                   this help
  quit                   leave`
