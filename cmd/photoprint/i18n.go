// Package main provides localization for the photoprint CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Brazilian Portuguese translations for CLI messages.
	l10n.Register("pt", l10n.LexiconMap{
		// Root command
		"Compose photos and captions into printable sheets.": "Monta fotos e legendas em folhas para impressão.",

		// Compose command
		"Compose photos and captions into a printable sheet.": "Monta fotos e legendas em uma folha para impressão.",
		"Photo files in gallery order.":                       "Arquivos de foto na ordem da galeria.",
		"Output PNG file path (default: derived from template).": "Caminho do PNG de saída (padrão: derivado do gabarito).",
		"Template id.":                            "Identificador do gabarito.",
		"Photo index used by single-photo templates.": "Índice da foto usada por gabaritos de foto única.",
		"Caption text per text slot (repeatable; Spotify links become scannable codes).": "Texto da legenda por slot (repetível; links do Spotify viram códigos escaneáveis).",
		"Caption font family (Dancing Script, Pacifico, Great Vibes, Satisfy).":          "Família de fonte da legenda (Dancing Script, Pacifico, Great Vibes, Satisfy).",
		"Auto-fit starting font size.":             "Tamanho inicial da fonte para ajuste automático.",
		"Caption alignment (left, center, right).": "Alinhamento da legenda (left, center, right).",
		"Force captions to upper case.":            "Força legendas em maiúsculas.",
		"Emoji footprint in mixed captions, in template units.": "Tamanho do emoji em legendas mistas, em unidades do gabarito.",
		"Scannable code background color (hex).":   "Cor de fundo do código escaneável (hex).",
		"Scannable code bar color (black or white).": "Cor das barras do código escaneável (black ou white).",
		"Base URL or path prefix for bundled emoji bitmaps.": "URL base ou prefixo dos bitmaps de emoji incluídos.",
		"Also write the composed SVG document to this path.": "Também grava o documento SVG composto neste caminho.",

		// Removebg command
		"Remove backgrounds from photos via the remote service.": "Remove o fundo das fotos pelo serviço remoto.",
		"Photo files to process.":                   "Arquivos de foto a processar.",
		"Background removal service endpoint URL.":  "URL do serviço de remoção de fundo.",
		"Directory for processed images.":           "Diretório das imagens processadas.",

		// Templates command
		"List available templates.": "Lista os gabaritos disponíveis.",

		// Version command
		"Show version information.":    "Mostra informações de versão.",
		"photoprint (Go) version %s":   "photoprint (Go) versão %s",

		// Debug flags
		"Enable debug output.":         "Ativa a saída de depuração.",
		"Directory for debug output.":  "Diretório da saída de depuração.",

		// Logging flags
		"Log level (debug, info, warn, error).": "Nível de log (debug, info, warn, error).",
		"Suppress all log output.":              "Suprime toda a saída de log.",

		// Runtime messages
		"Composing %s template...":      "Montando gabarito %s...",
		"Output saved to %s":            "Arquivo salvo em %s",
		"Backgrounds removed for %d images": "Fundo removido de %d imagens",
		"Interrupted, shutting down...": "Interrompido, encerrando...",

		// Orchestrator messages
		"Starting composition":               "Iniciando montagem",
		"Composition completed successfully": "Montagem concluída com sucesso",
		"Unknown template: %s":               "Gabarito desconhecido: %s",
		"Template %s: %d photo slots, %d text slots": "Gabarito %s: %d slots de foto, %d slots de texto",
		"Failed to composite photos: %s":   "Falha ao montar as fotos: %s",
		"Failed to composite captions: %s": "Falha ao montar as legendas: %s",
		"Failed to embed assets: %s":       "Falha ao embutir os recursos: %s",
		"Failed to rasterize: %s":          "Falha ao rasterizar: %s",
		"Failed to write output: %s":       "Falha ao gravar o arquivo: %s",
	})
}
