package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const commandList = "tui ls add done rm export keys doctor config tail completion version help"

// completionCommand prints a shell completion script.
func (a *app) completionCommand(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: todowidget completion <bash|zsh|fish|powershell>")
	}

	var script string
	switch strings.ToLower(args[0]) {
	case "bash":
		script = bashCompletion
	case "zsh":
		script = zshCompletion
	case "fish":
		script = fishCompletion
	case "powershell", "pwsh":
		script = powershellCompletion
	default:
		return fmt.Errorf("unsupported shell %q", args[0])
	}
	_, err := io.WriteString(a.stdout, strings.ReplaceAll(script, "{{commands}}", commandList))
	return err
}

const bashCompletion = `# todowidget bash completion
_todowidget() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    case "$prev" in
        --store|-store) COMPREPLY=($(compgen -W "sqlite file memory" -- "$cur")); return ;;
        --locale|-locale) COMPREPLY=($(compgen -W "en ru" -- "$cur")); return ;;
        --format|-format) COMPREPLY=($(compgen -W "json yaml" -- "$cur")); return ;;
        completion) COMPREPLY=($(compgen -W "bash zsh fish powershell" -- "$cur")); return ;;
    esac
    COMPREPLY=($(compgen -W "{{commands}}" -- "$cur"))
}
complete -F _todowidget todowidget
`

const zshCompletion = `#compdef todowidget
# todowidget zsh completion
_todowidget() {
    local -a commands
    commands=(${(s: :)"{{commands}}"})
    _arguments \
        '--key[storage key]:key:' \
        '--store[storage backend]:store:(sqlite file memory)' \
        '--locale[label language]:locale:(en ru)' \
        '1:command:($commands)' \
        '*::arg:->args'
}
_todowidget "$@"
`

const fishCompletion = `# todowidget fish completion
complete -c todowidget -f
complete -c todowidget -n '__fish_use_subcommand' -a '{{commands}}'
complete -c todowidget -l store -xa 'sqlite file memory'
complete -c todowidget -l locale -xa 'en ru'
complete -c todowidget -l key -x
complete -c todowidget -n '__fish_seen_subcommand_from export' -l format -xa 'json yaml'
complete -c todowidget -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish powershell'
`

const powershellCompletion = `# todowidget PowerShell completion
Register-ArgumentCompleter -Native -CommandName todowidget -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    '{{commands}}'.Split(' ') |
        Where-Object { $_ -like "$wordToComplete*" } |
        ForEach-Object { [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_) }
}
`
