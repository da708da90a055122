package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("pt", l10n.LexiconMap{
		// Render level messages (info)
		"Composing %s template...":        "Montando gabarito %s...",
		"Output saved to %s":              "Arquivo salvo em %s",
		"Render completed successfully":   "Renderização concluída com sucesso",
		"Starting render":                 "Iniciando renderização",
		"Interrupted, shutting down...":   "Interrompido, encerrando...",

		// Photos stage
		"Cleaning %d source images":       "Limpando %d imagens de origem",
		"Rotating images for landscape slots": "Rotacionando imagens para slots horizontais",
		"Slot %d: photo %d (rotated)":     "Slot %d: foto %d (rotacionada)",
		"Slot %d: photo %d":               "Slot %d: foto %d",
		"Injected %d photos":              "%d fotos inseridas",

		// Captions stage
		"Rendering %d text slots":         "Renderizando %d slots de texto",
		"Slot %d: scannable code (%s %s)": "Slot %d: código escaneável (%s %s)",
		"Slot %d: mixed text and emoji":   "Slot %d: texto com emojis",
		"Slot %d: plain text, fitted font size %.0f": "Slot %d: texto simples, fonte ajustada em %.0f",

		// Embed stage
		"Embedding fonts":                 "Embutindo fontes",
		"Embedded %d font files":          "%d arquivos de fonte embutidos",
		"Inlined %d images":               "%d imagens embutidas",

		// Raster stage
		"Rasterizing scene to %dx%d":      "Rasterizando cena em %dx%d",
		"Raster completed":                "Rasterização concluída",

		// Background removal
		"Removing background %d/%d: %s":   "Removendo fundo %d/%d: %s",
		"Backgrounds removed for %d images": "Fundo removido de %d imagens",

		// Warnings
		"Background removal failed for %s: %v": "Falha ao remover fundo de %s: %v",
		"Scannable code fetch failed for slot %d: %v": "Falha ao buscar código escaneável do slot %d: %v",
		"Font file not embedded: %s: %v":  "Fonte não embutida: %s: %v",
		"Image not inlined: %s: %v":       "Imagem não embutida: %s: %v",
		"Emoji not resolved: %s":          "Emoji não resolvido: %s",

		// Errors
		"Failed to parse template: %s":    "Falha ao interpretar o gabarito: %s",
		"Failed to rasterize: %s":         "Falha ao rasterizar: %s",
		"Failed to write output: %s":      "Falha ao gravar o arquivo: %s",
	})
}
