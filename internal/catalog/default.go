package catalog

import "github.com/crimson-sun/modelscout/internal/model"

// Default returns the built-in catalog that ships with modelscout.
// Entries will be expanded as the catalog matures; the aggregation pipeline
// that produces production catalogs lives outside this module.
func Default() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Name: "computer_vision",
				Subcategories: []Subcategory{
					{
						Name:     "image_classification",
						Keywords: []string{"image classification", "classify images", "photo categories", "recognize images", "label pictures"},
						Examples: []string{
							"classify product images into categories",
							"recognize what object appears in a photo",
							"sort user uploaded pictures by content",
						},
					},
					{
						Name:     "object_detection",
						Keywords: []string{"object detection", "detect objects", "bounding boxes", "locate objects", "count objects"},
						Examples: []string{
							"detect and locate objects in security camera footage",
							"count people in a crowd photo",
							"find defective parts on an assembly line",
						},
					},
					{
						Name:     "image_segmentation",
						Keywords: []string{"image segmentation", "segment image", "pixel mask", "background removal"},
						Examples: []string{
							"separate the foreground subject from the background",
							"outline each region of an aerial photograph by land use",
						},
					},
				},
			},
			{
				Name: "natural_language_processing",
				Subcategories: []Subcategory{
					{
						Name:     "text_classification",
						Keywords: []string{"text classification", "classify text", "sentiment analysis", "spam detection", "categorize documents"},
						Examples: []string{
							"classify customer reviews as positive or negative",
							"detect spam in incoming support emails",
							"route support tickets to the right team",
						},
					},
					{
						Name:     "summarization",
						Keywords: []string{"summarization", "summarize", "abstract", "condense text", "tl dr"},
						Examples: []string{
							"summarize long news articles into a few sentences",
							"generate an abstract for a research paper",
						},
					},
					{
						Name:     "translation",
						Keywords: []string{"translation", "translate", "language pair", "multilingual"},
						Examples: []string{
							"translate product descriptions from english to french",
							"build a multilingual chat translator",
						},
					},
					{
						Name:     "question_answering",
						Keywords: []string{"question answering", "answer questions", "qa", "extract answers"},
						Examples: []string{
							"answer questions about a company knowledge base",
							"extract the answer to a question from a contract",
						},
					},
				},
			},
			{
				Name: "audio",
				Subcategories: []Subcategory{
					{
						Name:     "speech_recognition",
						Keywords: []string{"speech recognition", "transcribe", "speech to text", "voice transcription", "dictation"},
						Examples: []string{
							"transcribe recorded customer calls to text",
							"add live captions to a video stream",
						},
					},
					{
						Name:     "audio_classification",
						Keywords: []string{"audio classification", "classify sounds", "sound events", "audio tagging"},
						Examples: []string{
							"detect glass breaking sounds in audio recordings",
							"tag music clips by genre",
						},
					},
				},
			},
			{
				Name: "tabular",
				Subcategories: []Subcategory{
					{
						Name:     "tabular_classification",
						Keywords: []string{"tabular classification", "predict category", "structured data", "churn prediction", "fraud detection"},
						Examples: []string{
							"predict customer churn from account data",
							"flag fraudulent transactions in a payments table",
						},
					},
					{
						Name:     "tabular_regression",
						Keywords: []string{"tabular regression", "predict value", "forecast number", "price prediction"},
						Examples: []string{
							"predict house prices from listing features",
							"forecast weekly sales from historical data",
						},
					},
				},
			},
		},
		Models: []model.Model{
			{ID: "mobilenet-v3-small", SizeMB: 10, Tier: model.TierLightweight, Accuracy: 0.68,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployMobile, model.DeployEdge},
				Category:   "computer_vision", Subcategory: "image_classification"},
			{ID: "efficientnet-b0", SizeMB: 21, Tier: model.TierLightweight, Accuracy: 0.77,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployMobile, model.DeployEdge, model.DeployCloud},
				Category:   "computer_vision", Subcategory: "image_classification"},
			{ID: "resnet-50", SizeMB: 98, Tier: model.TierLightweight, Accuracy: 0.76,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "computer_vision", Subcategory: "image_classification"},
			{ID: "vit-large-patch16", SizeMB: 1220, Tier: model.TierStandard, Accuracy: 0.88,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "computer_vision", Subcategory: "image_classification"},
			{ID: "yolov8-nano", SizeMB: 6, Tier: model.TierLightweight, Accuracy: 0.52,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployMobile, model.DeployEdge},
				Category:   "computer_vision", Subcategory: "object_detection"},
			{ID: "detr-resnet-50", SizeMB: 160, Tier: model.TierLightweight, Accuracy: 0.62,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "computer_vision", Subcategory: "object_detection"},
			{ID: "segformer-b0", SizeMB: 15, Tier: model.TierLightweight,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployEdge, model.DeployCloud},
				Category:   "computer_vision", Subcategory: "image_segmentation"},
			{ID: "distilbert-sst2", SizeMB: 260, Tier: model.TierLightweight, Accuracy: 0.91,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployCloud, model.DeployServer},
				Category:   "natural_language_processing", Subcategory: "text_classification"},
			{ID: "roberta-large-mnli", SizeMB: 1400, Tier: model.TierStandard, Accuracy: 0.94,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "natural_language_processing", Subcategory: "text_classification"},
			{ID: "t5-small", SizeMB: 240, Tier: model.TierLightweight, Accuracy: 0.71,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployCloud, model.DeployServer},
				Category:   "natural_language_processing", Subcategory: "summarization"},
			{ID: "bart-large-cnn", SizeMB: 1600, Tier: model.TierStandard, Accuracy: 0.83,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "natural_language_processing", Subcategory: "summarization"},
			{ID: "marian-en-fr", SizeMB: 300, Tier: model.TierLightweight, Accuracy: 0.79,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "natural_language_processing", Subcategory: "translation"},
			{ID: "nllb-200-distilled", SizeMB: 2500, Tier: model.TierStandard, Accuracy: 0.86,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "natural_language_processing", Subcategory: "translation"},
			{ID: "minilm-squad", SizeMB: 120, Tier: model.TierLightweight, Accuracy: 0.78,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployMobile, model.DeployCloud},
				Category:   "natural_language_processing", Subcategory: "question_answering"},
			{ID: "whisper-tiny", SizeMB: 75, Tier: model.TierLightweight, Accuracy: 0.74,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployMobile, model.DeployEdge},
				Category:   "audio", Subcategory: "speech_recognition"},
			{ID: "whisper-large-v3", SizeMB: 3100, Tier: model.TierStandard, Accuracy: 0.92,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "audio", Subcategory: "speech_recognition"},
			{ID: "ast-audioset", SizeMB: 350, Tier: model.TierLightweight, Accuracy: 0.69,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "audio", Subcategory: "audio_classification"},
			{ID: "xgboost-churn", SizeMB: 4, Tier: model.TierLightweight, Accuracy: 0.87,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployEdge, model.DeployCloud, model.DeployServer},
				Category:   "tabular", Subcategory: "tabular_classification"},
			{ID: "tabnet-large", SizeMB: 650, Tier: model.TierStandard, Accuracy: 0.89,
				Deployment: []model.Deployment{model.DeployCloud, model.DeployServer},
				Category:   "tabular", Subcategory: "tabular_classification"},
			{ID: "lightgbm-regressor", SizeMB: 3, Tier: model.TierLightweight, Accuracy: 0.81,
				Deployment: []model.Deployment{model.DeployBrowser, model.DeployEdge, model.DeployCloud, model.DeployServer},
				Category:   "tabular", Subcategory: "tabular_regression"},
		},
	}
}
