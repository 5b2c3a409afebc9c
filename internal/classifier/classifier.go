package classifier

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	ort "github.com/yalue/onnxruntime_go"
)

// ErrInvalidImage is returned when the upload is empty or not decodable.
var ErrInvalidImage = errors.New("payload is not a decodable image")

const inputSize = 128

// Result is a single top-1 classification.
type Result struct {
	ClassID    int
	Label      string
	Confidence float64
}

// Classifier wraps a single ONNX session loaded once at startup. The session
// is read-only shared state; concurrent Run calls are safe.
type Classifier struct {
	session *ort.DynamicAdvancedSession
}

// New initializes the onnxruntime environment and loads the weights file.
func New(modelPath, libraryPath string) (*Classifier, error) {
	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize onnxruntime: %w", err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", modelPath, err)
	}

	log.Info().Str("model", modelPath).Msg("Classifier model loaded")
	return &Classifier{session: session}, nil
}

// Predict decodes the uploaded bytes, runs one forward pass and returns the
// highest-probability class.
func (c *Classifier) Predict(data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	inputShape := ort.NewShape(1, 3, inputSize, inputSize)
	inputTensor, err := ort.NewTensor(inputShape, Preprocess(img))
	if err != nil {
		return nil, fmt.Errorf("failed to build input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, NumClasses))
	if err != nil {
		return nil, fmt.Errorf("failed to build output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	if err := c.session.Run([]ort.Value{inputTensor}, []ort.Value{outputTensor}); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	probs := Softmax(outputTensor.GetData())
	classID, confidence := argmax(probs)

	return &Result{
		ClassID:    classID,
		Label:      ClassName(classID),
		Confidence: confidence,
	}, nil
}

// Close releases the underlying session.
func (c *Classifier) Close() error {
	return c.session.Destroy()
}

// Preprocess resizes to 128x128 and normalizes pixels to [0,1] in CHW layout,
// matching the transform the network was trained with.
func Preprocess(img image.Image) []float32 {
	resized := imaging.Resize(img, inputSize, inputSize, imaging.Lanczos)

	data := make([]float32, 3*inputSize*inputSize)
	plane := inputSize * inputSize
	for y := 0; y < inputSize; y++ {
		for x := 0; x < inputSize; x++ {
			i := resized.PixOffset(x, y)
			pos := y*inputSize + x
			data[pos] = float32(resized.Pix[i]) / 255.0
			data[plane+pos] = float32(resized.Pix[i+1]) / 255.0
			data[2*plane+pos] = float32(resized.Pix[i+2]) / 255.0
		}
	}
	return data
}

// Softmax turns raw logits into a probability distribution.
func Softmax(logits []float32) []float64 {
	probs := make([]float64, len(logits))
	if len(logits) == 0 {
		return probs
	}

	max := float64(logits[0])
	for _, v := range logits[1:] {
		if float64(v) > max {
			max = float64(v)
		}
	}

	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(float64(v) - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// FormatConfidence renders a probability as a percentage string with two
// decimals, e.g. 0.97412 -> "97.41%".
func FormatConfidence(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

func argmax(probs []float64) (int, float64) {
	best, bestVal := 0, math.Inf(-1)
	for i, p := range probs {
		if p > bestVal {
			best, bestVal = i, p
		}
	}
	return best, bestVal
}
