package locale

import "github.com/akyairhashvil/nusui/internal/models"

var spanish = Strings{
	AppTitle: "Ñu-sui: aprende a usar los cambios de tu bici",

	TabIntro:     "Introducción",
	TabConfig:    "Mi Bicicleta",
	TabVisual:    "Visualización",
	TabRecommend: "¿Qué marcha usar?",
	TabTechnical: "Análisis Técnico",

	ModeLabel:     "Modo",
	ModeBeginner:  "Principiante",
	ModeTechnical: "Deportivo/Técnico",

	BikeTypeNames: map[string]string{
		"mtb":    "MTB (Montaña)",
		"road":   "Carretera",
		"urban":  "Urbana/Paseo",
		"custom": "Personalizada",
	},

	ConfigTitle:     "Configura tu bicicleta",
	ConfigIntro:     "Vamos a configurar tu bicicleta paso a paso. Si no conoces algún dato, puedes usar los valores predeterminados.",
	BikeTypeLabel:   "Tipo de bicicleta",
	WheelSizeLabel:  "Tamaño de rueda",
	CadenceLabel:    "Cadencia habitual (pedaladas por minuto)",
	CadenceHint:     "Una cadencia de 70-90 RPM es adecuada para la mayoría de los ciclistas.",
	ManualButton:    "Configurar manualmente",
	VisualizeButton: "Visualizar mi bicicleta",

	ManualTitle:       "Configuración manual de marchas",
	ChainringsLabel:   "Platos (delanteros)",
	SprocketsLabel:    "Piñones (traseros)",
	TeethPrompt:       "Introduce el número de dientes separados por comas",
	ChainringsExample: "Ejemplo: 24,34,42 para triple plato o 34,50 para doble plato",
	SprocketsExample:  "Ejemplo: 11,12,14,16,18,21,24,28,32,36 para un cassette de 10 velocidades",
	ConfigSaved:       "Configuración de marchas guardada correctamente",
	NeedGears:         "Debes configurar al menos un plato y un piñón",
	NotConfigured:     "Primero configura tu bicicleta en la pestaña 'Mi Bicicleta'",

	VisualTableTab:   "Tabla de marchas",
	VisualSpeedTab:   "Gráfico de velocidades",
	VisualDevTab:     "Desarrollo",
	GearTableTitle:   "Velocidades estimadas (km/h) a %d RPM",
	GearTableNote:    "Las velocidades se calculan con el tamaño de rueda: %s (%.3fm de circunferencia)",
	CrossingCount:    "No se muestran las velocidades de %d de %d combinaciones porque provocan 'cruce de cadena', que aumenta el desgaste de los componentes y reduce la eficiencia. Estas combinaciones están marcadas con '---'.",
	SpeedChartTitle:  "Velocidades a %d RPM",
	SpeedChartLegend: "o = combinaciones seguras   x = combinaciones con cruce de cadena (evitar)",
	DevTitle:         "Desarrollo de las marchas",
	DevBlurb:         "El desarrollo indica la distancia recorrida en metros por cada pedalada completa.",
	DevLegend:        "Las barras marcadas con 'x' provocan cruce de cadena; evítalas durante periodos prolongados.",

	RecommendTitle:   "¿Qué marcha debo usar?",
	TargetSpeedLabel: "Velocidad deseada (km/h)",
	SlopeLabel:       "Pendiente (%)",
	SlopeHint:        "0% = terreno llano, valores positivos = subida, valores negativos = bajada",
	CalculateHint:    "Pulsa enter para calcular la marcha recomendada",
	RecommendedGear:  "Marcha recomendada: %dT / %dT",
	UseGearLine:      "Usa el plato %s (de %d) y el piñón #%d (de %d)",
	EstimatedSpeed:   "Velocidad estimada",
	GearRatioLabel:   "Relación de marcha",
	DevelopmentLabel: "Desarrollo",
	CrossingWarning:  "ATENCIÓN: Esta combinación cruza la cadena. No se encontró ninguna combinación óptima que no cruce la cadena para la velocidad y pendiente indicadas. Se recomienda usar esta marcha solo brevemente y ajustar la velocidad objetivo.",
	AdviceLabel:      "Consejo",
	Advice: map[models.AdviceCategory]string{
		models.AdviceSteepClimb: "Para pendientes pronunciadas, mantén una cadencia alta y usa marchas suaves para no forzar las rodillas.",
		models.AdviceMildClimb:  "Mantén una cadencia constante. Si sientes que haces demasiada fuerza, cambia a una marcha más suave.",
		models.AdviceDescent:    "En descensos, puedes usar marchas más duras o simplemente dejar de pedalear si la velocidad es alta.",
		models.AdviceFlat:       "En llano, busca mantener una cadencia cómoda (80-90 RPM) y ajusta la marcha según el viento y tu condición física.",
	},

	ChainringLarge:  "grande",
	ChainringMiddle: "mediano",
	ChainringSmall:  "pequeño",

	TechTitle:        "Análisis Técnico",
	TechIntro:        "Esta pestaña contiene análisis técnicos para ciclistas con experiencia.",
	RatioTab:         "Relación de marchas",
	PowerTab:         "Cadencia vs Potencia",
	OverlapTab:       "Solapamiento",
	RatioTitle:       "Análisis de relación de marchas",
	RatioExplanation: "La relación de marcha es el número de dientes del plato dividido entre el número de dientes del piñón. Valores por encima de 5.0 son marchas muy duras para descensos o velocidad, 2.5-5.0 es el rango óptimo para uso normal, y valores por debajo de 2.5 son marchas suaves para subir.",
	PowerTitle:       "Velocidad y potencia para la combinación %dT / %dT",
	PowerExplanation: "La potencia es una estimación basada en un modelo simplificado, considerando la resistencia aerodinámica que crece exponencialmente con la velocidad. Para una misma marcha, aumentar la cadencia aumenta la velocidad linealmente, mientras que la potencia necesaria crece mucho más rápido.",
	OverlapTitle:     "Análisis de solapamiento de marchas",

	OverlapNeedTwo:      "Se necesitan al menos dos platos para analizar el solapamiento.",
	OverlapPairFiltered: "Entre el plato de %dT y el de %dT (sin cruces de cadena):",
	OverlapPairFull:     "Entre el plato de %dT y el de %dT (incluyendo cruces de cadena):",
	OverlapRangeLine:    "- Rango de solapamiento: %.2f a %.2f",
	OverlapPctLine:      "- Porcentaje de solapamiento: %.1f%%",
	OverlapEval: map[models.OverlapRating]string{
		models.OverlapLow:      "- Evaluación: Solapamiento bajo. Puede haber 'saltos' grandes al cambiar de plato.",
		models.OverlapModerate: "- Evaluación: Solapamiento moderado. Configuración equilibrada.",
		models.OverlapHigh:     "- Evaluación: Solapamiento alto. Hay muchas marchas redundantes.",
	},
	OverlapNone:        "- No hay solapamiento entre marchas utilizables.",
	UsableRangeLine:    "Rango total de marchas (sin cruces de cadena): %.2fx",
	UsableRangeMissing: "No se puede calcular el rango sin cruces de cadena.",
	TotalRangeLine:     "Rango total de marchas (incluyendo cruces de cadena): %.2fx",
	RangeEval: map[models.RangeRating]string{
		models.RangeLimited:  "Evaluación: Rango limitado. Adecuado para terreno uniforme o uso específico.",
		models.RangeModerate: "Evaluación: Rango moderado. Bueno para uso general.",
		models.RangeWide:     "Evaluación: Rango amplio. Excelente versatilidad para distintos terrenos.",
	},

	CrossingReasons: map[models.CrossingReason]string{
		models.CrossingLargeLarge:          "Plato grande con piñón grande: aumenta el desgaste y reduce la eficiencia",
		models.CrossingSmallSmall:          "Plato pequeño con piñón pequeño: aumenta el desgaste y reduce la eficiencia",
		models.CrossingMiddleExtreme:       "Plato mediano con piñón extremo: puede causar desgaste",
		models.CrossingIntermediateExtreme: "Plato intermedio con piñón extremo: puede causar desgaste",
	},

	DebugTitle:      "Matriz de cruce de cadena (X = cruce, O = seguro)",
	DebugLegend:     "Las combinaciones marcadas con X deben evitarse durante periodos prolongados: aumentan el desgaste de la cadena, platos, piñones y desviador, reducen la eficiencia de pedaleo y aumentan el riesgo de que la cadena se salga.",
	DebugChainrings: "Platos: %v",
	DebugSprockets:  "Piñones: %v",

	IntroTitle: "Ñu-sui: ¡Aprende a usar los cambios de tu bici!",
	IntroText: `¡Hola! Esta aplicación te ayudará a entender cómo usar los cambios de
tu bicicleta.

Aprender a usar bien los cambios te permitirá:
  - Pedalear con menos esfuerzo
  - Mantener una velocidad cómoda
  - Subir cuestas con más facilidad
  - Evitar el desgaste prematuro de tu bicicleta

Es como elegir la marcha correcta en un coche, pero para tu bicicleta.

¿Qué son las marchas?
  Las marchas son combinaciones de 'platos' (delante) y 'piñones'
  (detrás) que determinan cuánto avanza tu bicicleta con cada pedalada.

Platos (delanteros)
  Discos dentados unidos a los pedales. Los grandes son para velocidad
  en llano, los pequeños para subir cuestas.

Piñones (traseros)
  Discos dentados en la rueda trasera. Los pequeños son para velocidad,
  los grandes para pedalear más fácil cuesta arriba.

Cadencia
  La velocidad a la que pedaleas (revoluciones por minuto). Lo ideal es
  mantener entre 70-90 RPM.`,

	HelpTitle: "Cómo usar esta aplicación",
	HelpText: `1. MI BICICLETA: selecciona el tipo de bicicleta más parecido al tuyo,
   ajusta el tamaño de rueda y tu cadencia habitual, o configura
   manualmente si conoces los dientes exactos de tu transmisión.

2. VISUALIZACIÓN: explora la tabla de marchas para ver qué velocidad
   alcanzarás con cada combinación, el gráfico de velocidades y el
   desarrollo por pedalada.

3. ¿QUÉ MARCHA USAR?: indica tu velocidad deseada y la pendiente del
   terreno para obtener una recomendación personalizada.

4. ANÁLISIS TÉCNICO (solo en modo técnico): análisis de relación de
   marchas, potencia y solapamiento para ciclistas con experiencia.

CRUCE DE CADENA: las combinaciones extremas (grande/grande o
pequeño/pequeño) ponen la cadena en un ángulo diagonal pronunciado,
provocando desgaste y pérdida de eficiencia. Estas combinaciones se
marcan o se filtran. La regla de oro: usa combinaciones donde la cadena
trabaje lo más recta posible.`,

	AboutTitle: "Calculadora de velocidades de bicicleta",
	AboutText: `El término "Ñu-sui" significa "ciclista" en zapoteco, una lengua
originaria de Oaxaca, México. Una herramienta educativa para ciclistas
de todos los niveles.

Esta aplicación te ayuda a entender y optimizar el uso de los cambios
de tu bicicleta para mejorar tu experiencia de pedaleo.`,

	KeyHints: "tab/shift+tab cambiar pestaña - m modo - l idioma - x matriz de cruces - ? ayuda - e exportar PDF - q salir",
}
