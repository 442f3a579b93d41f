package seed

import (
	"github.com/ecoexpedicoes/attractions-service/internal/domain"
)

// InitialAttractions returns the Bonito (MS) starter catalog loaded when
// the attractions table is empty.
func InitialAttractions() []*domain.Attraction {
	return []*domain.Attraction{
		{
			ID:    "gruta-lago-azul",
			Name:  "Gruta do Lago Azul",
			Image: "https://images.unsplash.com/photo-1534447677712-7e5b1a9d9b4f",
			Photos: []string{
				"https://images.unsplash.com/photo-1534447677712-7e5b1a9d9b4f",
				"https://images.unsplash.com/photo-1574607383476-f517f260d30b",
				"https://images.unsplash.com/photo-1557750255-c76072a7aad1",
			},
			Duration:        "1h 30min",
			Activities:      []string{"Caminhada", "Contemplação", "Fotografia"},
			Difficulty:      "Fácil",
			Rating:          4.8,
			Description:     "Uma das grutas mais famosas do Brasil, com um lago subterrâneo de águas azuis cristalinas.",
			Distance:        "20 km",
			Coordinates:     "-21.1167, -56.4833",
			FullDescription: "A Gruta do Lago Azul é um dos cartões-postais de Bonito. A caverna calcária abriga um lago subterrâneo de águas cristalinas e coloração azul intensa, que varia conforme a incidência da luz solar. A descida até o lago é feita por uma trilha com degraus naturais e artificiais.",
			Curiosities: []string{
				"O lago tem 87 metros de profundidade",
				"A cor azul é causada pela absorção da luz solar",
				"Foram encontrados fósseis de preguiça gigante no local",
				"A gruta mantém temperatura constante de 18°C",
			},
			Tips: []string{
				"Melhor horário para visitação: 7h às 9h",
				"Não é permitido tocar na água",
				"Use calçados antiderrapantes",
				"Leve agasalho, a temperatura é baixa",
			},
			Category: "Gruta",
			Price:    "R$ 75,00",
		},
		{
			ID:    "rio-da-prata",
			Name:  "Rio da Prata",
			Image: "https://images.unsplash.com/photo-1573160813453-0df4a4792090",
			Photos: []string{
				"https://images.unsplash.com/photo-1573160813453-0df4a4792090",
				"https://images.unsplash.com/photo-1580267604631-e2d3b4f5d6e4",
				"https://images.unsplash.com/photo-1571770095285-40a32c9ee95d",
			},
			Duration:        "4h",
			Activities:      []string{"Flutuação", "Snorkeling", "Trilha Ecológica", "Observação da Fauna"},
			Difficulty:      "Fácil",
			Rating:          4.9,
			Description:     "Rio de águas cristalinas perfeito para flutuação, com rica vida aquática e vegetação exuberante.",
			Distance:        "15 km",
			Coordinates:     "-21.0833, -56.5167",
			FullDescription: "O Rio da Prata oferece uma das experiências de flutuação mais incríveis do mundo. Com águas cristalinas e temperatura constante, permite observar dezenas de espécies de peixes, plantas aquáticas e a rica biodiversidade do Pantanal. A atividade inclui trilha interpretativa pela mata ciliar.",
			Curiosities: []string{
				"Visibilidade da água chega a 50 metros",
				"Temperatura da água é constante: 22°C",
				"Abriga mais de 30 espécies de peixes",
				"As nascentes filtram a água através do calcário",
			},
			Tips: []string{
				"Não use protetor solar ou repelente",
				"É obrigatório o uso de colete salva-vidas",
				"Não alimente os peixes",
				"Respeite a velocidade da correnteza",
			},
			Category: "Rio",
			Price:    "R$ 388,00",
		},
		{
			ID:    "abismo-anhumas",
			Name:  "Abismo Anhumas",
			Image: "https://images.unsplash.com/photo-1519904981063-b0cf448d479e",
			Photos: []string{
				"https://images.unsplash.com/photo-1519904981063-b0cf448d479e",
				"https://images.unsplash.com/photo-1580267747235-d0a40f1b8a58",
				"https://images.unsplash.com/photo-1574607383476-f517f260d30b",
			},
			Duration:        "4h",
			Activities:      []string{"Rapel", "Mergulho", "Flutuação", "Espeleologia"},
			Difficulty:      "Difícil",
			Rating:          4.7,
			Description:     "Caverna acessada por rapel de 72 metros, com lago subterrâneo cristalino e espeleotemas únicos.",
			Distance:        "23 km",
			Coordinates:     "-21.1500, -56.4667",
			FullDescription: "O Abismo Anhumas é uma das experiências mais emocionantes de Bonito. O acesso se dá através de um rapel de 72 metros por uma dolina circular. No interior, um lago de águas cristalinas permite mergulho e flutuação entre impressionantes formações calcárias.",
			Curiosities: []string{
				"A dolina tem 162 metros de diâmetro na superfície",
				"O lago subterrâneo tem 80 metros de profundidade",
				"As estalactites levaram milhares de anos para se formar",
				"É o único local no Brasil para mergulho em caverna",
			},
			Tips: []string{
				"Necessário agendamento antecipado",
				"Idade mínima: 12 anos",
				"Peso máximo: 120kg para rapel",
				"Leve máscara de mergulho própria",
			},
			Category: "Aventura",
			Price:    "R$ 850,00",
		},
		{
			ID:    "rio-sucuri",
			Name:  "Rio Sucuri",
			Image: "https://images.unsplash.com/photo-1571770095285-40a32c9ee95d",
			Photos: []string{
				"https://images.unsplash.com/photo-1571770095285-40a32c9ee95d",
				"https://images.unsplash.com/photo-1573160813453-0df4a4792090",
				"https://images.unsplash.com/photo-1580267604631-e2d3b4f5d6e4",
			},
			Duration:        "3h",
			Activities:      []string{"Flutuação", "Observação da Fauna", "Trilha", "Fotografia"},
			Difficulty:      "Fácil",
			Rating:          4.6,
			Description:     "Rio com águas transparentes, ideal para flutuação tranquila e observação da vida aquática.",
			Distance:        "18 km",
			Coordinates:     "-21.0667, -56.5333",
			FullDescription: "O Rio Sucuri é conhecido por suas águas extremamente transparentes e flutuação tranquila. Com nascentes que brotam do calcário, oferece uma experiência única de contato com a natureza, onde é possível observar peixes, plantas aquáticas e a mata ciliar preservada.",
			Curiosities: []string{
				"O nome Sucuri vem da cobra que habita a região",
				"A água tem pH alcalino devido ao calcário",
				"Flutuação de 1,8 km rio abaixo",
				"Temperatura constante de 24°C",
			},
			Tips: []string{
				"Ideal para iniciantes na flutuação",
				"Não é permitido usar nadadeiras",
				"Respeite a fauna aquática",
				"Siga sempre o guia credenciado",
			},
			Category: "Rio",
			Price:    "R$ 298,00",
		},
		{
			ID:    "buraco-das-araras",
			Name:  "Buraco das Araras",
			Image: "https://images.unsplash.com/photo-1591280063332-45a3a15bcf47",
			Photos: []string{
				"https://images.unsplash.com/photo-1591280063332-45a3a15bcf47",
				"https://images.unsplash.com/photo-1571728480887-7e6c60b3ee1f",
				"https://images.unsplash.com/photo-1568459750992-6db4ac31c75c",
			},
			Duration:        "2h",
			Activities:      []string{"Observação de Aves", "Trilha", "Fotografia", "Contemplação"},
			Difficulty:      "Fácil",
			Rating:          4.5,
			Description:     "Dolina gigante que abriga centenas de araras-vermelhas, oferecendo um espetáculo natural único.",
			Distance:        "25 km",
			Coordinates:     "-21.2167, -56.5000",
			FullDescription: "O Buraco das Araras é uma dolina de 124 metros de diâmetro e 160 metros de profundidade, formada pelo desabamento do teto de uma antiga caverna. É o lar de centenas de araras-vermelhas e outras espécies da fauna do Cerrado.",
			Curiosities: []string{
				"Abriga mais de 150 araras-vermelhas",
				"A dolina se formou há milhares de anos",
				"É possível ver 5 espécies de araras diferentes",
				"As araras saem ao amanhecer e retornam ao entardecer",
			},
			Tips: []string{
				"Melhor horário: 6h30 ou 17h30",
				"Leve binóculos para melhor observação",
				"Faça silêncio para não assustar as aves",
				"Use roupas de cores neutras",
			},
			Category: "Ecoturismo",
			Price:    "R$ 78,00",
		},
		{
			ID:    "boca-da-onca",
			Name:  "Boca da Onça",
			Image: "https://images.unsplash.com/photo-1641823070017-bb8a52a5fd59?crop=entropy&cs=srgb&fm=jpg&q=85",
			Photos: []string{
				"https://images.unsplash.com/photo-1641823070017-bb8a52a5fd59?crop=entropy&cs=srgb&fm=jpg&q=85",
				"https://images.unsplash.com/photo-1543881131-20e6b1e7c81a?crop=entropy&cs=srgb&fm=jpg&q=85",
				"https://images.unsplash.com/photo-1535392244477-7cb534eece28?crop=entropy&cs=srgb&fm=jpg&q=85",
			},
			Duration:        "6h",
			Activities:      []string{"Trilha", "Rapel", "Cachoeiras", "Observação da Fauna"},
			Difficulty:      "Moderado",
			Rating:          4.6,
			Description:     "Maior cachoeira de Mato Grosso do Sul com trilhas ecológicas e atividades radicais.",
			Distance:        "45 km",
			Coordinates:     "-21.3000, -56.6000",
			FullDescription: "O complexo Boca da Onça abriga a maior cachoeira de MS com 156 metros de altura. Oferece trilhas ecológicas, rapel na cachoeira e várias quedas d'água para banho. É um dos destinos mais completos para ecoturismo na região.",
			Curiosities: []string{
				"Maior cachoeira de Mato Grosso do Sul",
				"Queda principal de 156 metros",
				"Mais de 4 trilhas diferentes",
				"Rica fauna e flora do Cerrado",
			},
			Tips: []string{
				"Use calçados apropriados para trilha",
				"Leve bastante água",
				"Protetor solar biodegradável",
				"Reserve dia inteiro",
			},
			Category: "Cachoeira",
			Price:    "R$ 178,00",
		},
	}
}
