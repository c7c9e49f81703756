package service

import (
	"acnescan/internal/domain"
)

// treatmentCatalog maps classifier class labels ("<Type>_<Severity>") to
// curated skincare and lifestyle suggestions.
var treatmentCatalog = map[string][]domain.TreatmentSuggestion{
	"Blackheads_Mild": {
		{
			Title:       "Gentle Cleansing Routine",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Cleanse twice daily with a gentle, foaming, non-comedogenic cleanser to remove excess oil and impurities without stripping moisture.",
		},
		{
			Title:       "Exfoliation and Topicals",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use a low-strength salicylic acid (0.5–2%) or glycolic acid toner 2–3 times per week to prevent pore blockage.",
		},
		{
			Title:       "Oil Control",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Apply a lightweight, oil-free moisturizer to maintain hydration balance and reduce sebum overproduction.",
		},
		{
			Title:       "Lifestyle Adjustments",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Avoid heavy makeup or occlusive products that can clog pores. Maintain a balanced diet and stay hydrated.",
		},
	},
	"Blackheads_Moderate": {
		{
			Title:       "Cleansing and Exfoliation",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use a salicylic acid or glycolic acid cleanser once daily to dissolve excess oil and debris in pores.",
		},
		{
			Title:       "Retinoid Use",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Apply a retinoid (adapalene 0.1%) nightly to promote cell turnover and prevent comedone formation.",
		},
		{
			Title:       "Moisturizing and Sun Protection",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Moisturize with non-comedogenic products and apply sunscreen daily to avoid post-inflammatory pigmentation.",
		},
		{
			Title:       "Dietary Modifications",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Reduce sugary foods and dairy; increase intake of fiber, lean protein, and antioxidants.",
		},
	},
	"Blackheads_Severe": {
		{
			Title:       "Advanced Topicals",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use prescription-strength retinoids (tretinoin or adapalene 0.3%) under dermatologist supervision.",
		},
		{
			Title:       "Professional Extraction or Chemical Peels",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Dermatologist-performed extractions or light chemical peels can help clear deep-seated comedones.",
		},
		{
			Title:       "Oil Regulation",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Avoid occlusive skincare and hair products. Use oil-absorbing sheets or mattifying gels if needed.",
		},
		{
			Title:       "Lifestyle Support",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Minimize stress and maintain consistent sleep and hydration patterns to support skin balance.",
		},
	},
	"Cystic_Mild": {
		{
			Title:       "Cleansing and Soothing Care",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Cleanse gently with a hydrating, non-stripping cleanser. Avoid picking or squeezing cysts.",
		},
		{
			Title:       "Topical Anti-Inflammatories",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use benzoyl peroxide (2.5%) or sulfur-based spot treatments to reduce inflammation.",
		},
		{
			Title:       "Hydration and Barrier Care",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Apply ceramide-rich moisturizers to support healing and reduce irritation.",
		},
		{
			Title:       "Lifestyle and Hormone Awareness",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Track hormonal cycles; consult a dermatologist if breakouts correlate with menstrual changes.",
		},
	},
	"Cystic_Moderate": {
		{
			Title:       "Targeted Topical Treatments",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Combine benzoyl peroxide with a retinoid (adapalene 0.1%) to target deep inflammation and prevent new cysts.",
		},
		{
			Title:       "Professional Guidance",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Dermatologists may prescribe oral antibiotics or hormonal therapy (e.g., spironolactone).",
		},
		{
			Title:       "Anti-Inflammatory Diet",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Incorporate foods rich in omega-3s, green tea, and zinc; reduce processed and high-glycemic foods.",
		},
		{
			Title:       "Stress and Sleep Management",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Adopt relaxation routines and ensure consistent sleep to regulate hormonal balance.",
		},
	},
	"Cystic_Severe": {
		{
			Title:       "Medical Treatment Required",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Oral isotretinoin is often the most effective option for severe cystic acne. Must be prescribed by a dermatologist.",
		},
		{
			Title:       "Supportive Skincare",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use gentle cleansers and non-comedogenic moisturizers to reduce dryness and irritation during treatment.",
		},
		{
			Title:       "Avoid Aggravation",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Do not attempt extraction. Limit dairy, sugar, and processed foods that can worsen inflammation.",
		},
		{
			Title:       "Follow-Up and Patience",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Follow dermatologist guidance and attend regular check-ins to monitor skin and blood health.",
		},
	},
	"Nodular_Mild": {
		{
			Title:       "Cleansing and Soothing",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Cleanse gently and apply ice compresses to reduce swelling.",
		},
		{
			Title:       "Spot Treatments",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use benzoyl peroxide gel on affected areas to limit bacterial growth.",
		},
		{
			Title:       "Consistent Moisturization",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Hydrate with lightweight moisturizers to support healing.",
		},
		{
			Title:       "Lifestyle Support",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Manage stress and ensure proper hydration to support the skin barrier.",
		},
	},
	"Nodular_Moderate": {
		{
			Title:       "Topical and Oral Combination Therapy",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use retinoids alongside dermatologist-prescribed oral antibiotics to reduce inflammation.",
		},
		{
			Title:       "Anti-Inflammatory Skincare",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Avoid harsh scrubs and fragranced products; use calming ingredients like niacinamide.",
		},
		{
			Title:       "Lifestyle Adjustments",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Reduce dairy and high-glycemic foods; incorporate zinc and vitamin A-rich foods.",
		},
	},
	"Nodular_Severe": {
		{
			Title:       "Professional Intervention",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Consult a dermatologist for oral isotretinoin or corticosteroid injections for large nodules.",
		},
		{
			Title:       "Supportive Care",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use gentle cleansers and avoid popping or applying pressure to lesions.",
		},
		{
			Title:       "Holistic Care",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Maintain stress control, sleep, and balanced nutrition for long-term healing.",
		},
	},
	"Papules_Mild": {
		{
			Title:       "Cleansing and Spot Care",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use a mild cleanser and spot-treat with benzoyl peroxide or salicylic acid.",
		},
		{
			Title:       "Barrier Support",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Moisturize daily to prevent dryness and irritation.",
		},
		{
			Title:       "Lifestyle Focus",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Avoid touching your face and reduce dietary triggers like sugar and dairy.",
		},
	},
	"Papules_Moderate": {
		{
			Title:       "Targeted Topicals",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Apply topical retinoids (e.g., adapalene 0.1%) nightly to promote cell turnover and reduce inflammation.",
		},
		{
			Title:       "Anti-inflammatory Care",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Incorporate niacinamide or azelaic acid to calm redness and swelling.",
		},
		{
			Title:       "Professional Consultation",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Consider dermatologist-prescribed oral antibiotics if papules are widespread or persistent.",
		},
		{
			Title:       "Diet and Hydration",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Focus on a low-glycemic diet, increase water intake, and reduce alcohol consumption.",
		},
	},
	"Papules_Severe": {
		{
			Title:       "Advanced Topicals and Oral Support",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Combine prescription retinoids with oral antibiotics to reduce widespread inflammation.",
		},
		{
			Title:       "Moisturization and Repair",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use ceramide-based moisturizers and avoid exfoliating products during flare-ups.",
		},
		{
			Title:       "Lifestyle and Stress Control",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Engage in stress management and consistent sleep routines to minimize hormonal triggers.",
		},
	},
	"Pustules_Mild": {
		{
			Title:       "Antibacterial Cleansing",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use a gentle cleanser with benzoyl peroxide (2.5%) to prevent bacterial growth.",
		},
		{
			Title:       "Targeted Spot Treatment",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Apply sulfur or salicylic acid treatments only to affected areas.",
		},
		{
			Title:       "Healthy Lifestyle Habits",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Avoid picking pustules and maintain a balanced diet with anti-inflammatory foods.",
		},
	},
	"Pustules_Moderate": {
		{
			Title:       "Dual Therapy Approach",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use a topical retinoid at night and benzoyl peroxide in the morning.",
		},
		{
			Title:       "Professional Consultation",
			Category:    domain.SuggestionCategorySkincare,
			Description: "If inflammation persists, consider dermatologist-prescribed antibiotics.",
		},
		{
			Title:       "Dietary and Sleep Care",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Avoid processed foods, prioritize hydration, and get adequate rest.",
		},
	},
	"Pustules_Severe": {
		{
			Title:       "Medical Management",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Combine oral antibiotics with topical retinoids and benzoyl peroxide. Avoid manual extraction.",
		},
		{
			Title:       "Barrier Recovery",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use gentle, non-irritating skincare to support healing and prevent scarring.",
		},
		{
			Title:       "Lifestyle Support",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Adopt a low-inflammatory diet and ensure consistent sleep and stress management.",
		},
	},
	"Whiteheads_Mild": {
		{
			Title:       "Gentle Cleansing",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Wash twice daily with a mild cleanser. Avoid pore-clogging products.",
		},
		{
			Title:       "Topical Exfoliation",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use a low-strength salicylic acid product to clear pores and prevent new whiteheads.",
		},
		{
			Title:       "Lifestyle",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Keep pillowcases and phone screens clean to reduce bacteria transfer.",
		},
	},
	"Whiteheads_Moderate": {
		{
			Title:       "Active Exfoliation",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use salicylic acid and a topical retinoid (adapalene) to enhance skin turnover.",
		},
		{
			Title:       "Hydration and Repair",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use a lightweight, oil-free moisturizer to maintain hydration.",
		},
		{
			Title:       "Diet and Lifestyle",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Limit dairy and sugar; manage stress through exercise or relaxation.",
		},
	},
	"Whiteheads_Severe": {
		{
			Title:       "Advanced Retinoid Regimen",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Use dermatologist-prescribed retinoids or chemical peels for deep comedones.",
		},
		{
			Title:       "Medical Supervision",
			Category:    domain.SuggestionCategorySkincare,
			Description: "Oral retinoids may be prescribed for persistent or scarring whiteheads.",
		},
		{
			Title:       "Lifestyle Consistency",
			Category:    domain.SuggestionCategoryLifestyle,
			Description: "Maintain healthy sleep, hydration, and nutrition to regulate oil production.",
		},
	},
}
