package theme

// defaultDarkColors is the baseline dark-mode value for every catalog
// property. Configuration asset, load-once and read-only.
var defaultDarkColors = map[string]string{
	"windowBg":                      "17212b",
	"windowFg":                      "f5f5f5",
	"windowBgOver":                  "232e3c",
	"windowBgRipple":                "2b3648",
	"windowSubTextFg":               "708499",
	"windowBoldFg":                  "e4ecf2",
	"windowBgActive":                "6ab3f3",
	"windowFgActive":                "ffffff",
	"windowActiveTextFg":            "70baf5",
	"windowShadowFg":                "00000030",
	"shadowFg":                      "00000030",
	"imageBg":                       "0e1621",
	"activeButtonBg":                "6ab3f3",
	"activeButtonBgOver":            "5fa6e4",
	"activeButtonBgRipple":          "5495d2",
	"activeButtonFg":                "ffffff",
	"activeButtonSecondaryFg":       "cbe7ff",
	"activeLineFg":                  "6ab3f3",
	"activeLineFgError":             "e65050",
	"lightButtonBg":                 "17212b",
	"lightButtonBgOver":             "25303e",
	"lightButtonFg":                 "70baf5",
	"attentionButtonFg":             "e65050",
	"attentionButtonFgOver":         "d64747",
	"attentionButtonBgOver":         "38242a",
	"outlineButtonBg":               "17212b",
	"outlineButtonOutlineFg":        "6ab3f3",
	"scrollBarBg":                   "ffffff53",
	"scrollBg":                      "ffffff1a",
	"placeholderFg":                 "586c7e",
	"inputBorderFg":                 "3e546a",
	"filterInputBorderFg":           "6ab3f3",
	"checkboxFg":                    "6b7f94",
	"sliderBgInactive":              "3e546a",
	"sliderBgActive":                "6ab3f3",
	"tooltipBg":                     "242f3d",
	"tooltipFg":                     "8096a8",
	"titleShadow":                   "00000030",
	"titleBg":                       "17212b",
	"titleBgActive":                 "17212b",
	"titleButtonFg":                 "5f7285",
	"titleButtonBgOver":             "25303e",
	"titleButtonFgOver":             "8398ab",
	"titleButtonCloseFg":            "5f7285",
	"titleButtonCloseBgOver":        "e81123",
	"titleButtonCloseFgOver":        "ffffff",
	"titleFg":                       "5f7285",
	"titleFgActive":                 "9eb4c8",
	"menuBg":                        "17212b",
	"menuBgOver":                    "232e3c",
	"menuBgRipple":                  "2b3648",
	"menuIconFg":                    "6b7f94",
	"menuIconFgOver":                "7d95ac",
	"menuFgDisabled":                "586c7e",
	"menuSeparatorFg":               "0e1621",
	"dialogsMenuIconFg":             "6b7f94",
	"dialogsMenuIconFgOver":         "7d95ac",
	"dialogsBg":                     "17212b",
	"dialogsNameFg":                 "f5f5f5",
	"dialogsChatIconFg":             "f5f5f5",
	"dialogsDateFg":                 "708499",
	"dialogsTextFg":                 "708499",
	"dialogsTextFgService":          "70baf5",
	"dialogsDraftFg":                "e65050",
	"dialogsVerifiedIconBg":         "6ab3f3",
	"dialogsVerifiedIconFg":         "17212b",
	"dialogsSendingIconFg":          "6b7f94",
	"dialogsSentIconFg":             "4fae4e",
	"dialogsUnreadBg":               "6ab3f3",
	"dialogsUnreadBgMuted":          "3e546a",
	"dialogsUnreadFg":               "ffffff",
	"dialogsBgOver":                 "232e3c",
	"dialogsBgActive":               "2b5278",
	"dialogsNameFgActive":           "f5f5f5",
	"dialogsDateFgActive":           "b0c8e0",
	"dialogsTextFgActive":           "d4e2f0",
	"dialogsUnreadBgActive":         "6ab3f3",
	"dialogsUnreadBgMutedActive":    "44607c",
	"dialogsUnreadFgActive":         "ffffff",
	"dialogsRippleBg":               "2b3648",
	"dialogsRippleBgActive":         "3d6a9e",
	"dialogsForwardBg":              "2b5278",
	"dialogsForwardFg":              "f5f5f5",
	"searchedBarBg":                 "232e3c",
	"searchedBarFg":                 "708499",
	"topBarBg":                      "17212b",
	"historyTextInFg":               "f5f5f5",
	"historyTextInFgSelected":       "f5f5f5",
	"historyTextOutFg":              "f5f5f5",
	"historyTextOutFgSelected":      "f5f5f5",
	"historyLinkInFg":               "70baf5",
	"historyLinkInFgSelected":       "70baf5",
	"historyLinkOutFg":              "70baf5",
	"historyLinkOutFgSelected":      "70baf5",
	"historyFileNameInFg":           "f5f5f5",
	"historyFileNameOutFg":          "f5f5f5",
	"historyOutIconFg":              "4fae4e",
	"historyOutIconFgSelected":      "4fae4e",
	"historyIconFgInverted":         "ffffff",
	"historySendingOutIconFg":       "6b7f94",
	"historySendingInIconFg":        "6b7f94",
	"historyCallArrowInFg":          "4fb944",
	"historyCallArrowMissedInFg":    "e65050",
	"historyCallArrowOutFg":         "4fb944",
	"historyUnreadBarBg":            "232e3c",
	"historyUnreadBarBorder":        "00000030",
	"historyUnreadBarFg":            "70baf5",
	"historyForwardChooseBg":        "0000004c",
	"historyForwardChooseFg":        "f5f5f5",
	"historyPeer1NameFg":            "e17076",
	"historyPeer2NameFg":            "7bc862",
	"historyPeer3NameFg":            "e5ca77",
	"historyPeer4NameFg":            "65aadd",
	"msgInBg":                       "182533",
	"msgInBgSelected":               "24425c",
	"msgOutBg":                      "2b5278",
	"msgOutBgSelected":              "3d6a9e",
	"msgSelectOverlay":              "358cd44c",
	"msgStickerOverlay":             "358cd47f",
	"msgInServiceFg":                "70baf5",
	"msgInServiceFgSelected":        "70baf5",
	"msgOutServiceFg":               "70baf5",
	"msgOutServiceFgSelected":       "70baf5",
	"msgInShadow":                   "00000021",
	"msgOutShadow":                  "00000021",
	"msgInDateFg":                   "708499",
	"msgInDateFgSelected":           "7da8d3",
	"msgOutDateFg":                  "7da8d3",
	"msgOutDateFgSelected":          "7da8d3",
	"msgServiceFg":                  "c8d4e2",
	"msgServiceBg":                  "0e16217f",
	"msgServiceBgSelected":          "18222d7f",
	"msgInReplyBarColor":            "6ab3f3",
	"msgOutReplyBarColor":           "6ab3f3",
	"msgImgReplyBarColor":           "ffffff",
	"msgInMonoFg":                   "83a8c8",
	"msgOutMonoFg":                  "83a8c8",
	"msgDateImgFg":                  "ffffff",
	"msgDateImgBg":                  "00000054",
	"msgFileThumbLinkInFg":          "70baf5",
	"msgFileThumbLinkOutFg":         "70baf5",
	"msgFileInBg":                   "6ab3f3",
	"msgFileInBgOver":               "5fa6e4",
	"msgFileOutBg":                  "6ab3f3",
	"msgFileOutBgOver":              "5fa6e4",
	"msgWaveformInActive":           "6ab3f3",
	"msgWaveformInInactive":         "3e546a",
	"msgWaveformOutActive":          "6ab3f3",
	"msgWaveformOutInactive":        "3e546a",
	"callBg":                        "26282cf2",
	"callNameFg":                    "ffffff",
	"callFingerprintBg":             "00000066",
	"callStatusFg":                  "aaabac",
	"callIconFg":                    "ffffff",
	"callAnswerBg":                  "64c15f",
	"callHangupBg":                  "d75a5a",
	"callCancelBg":                  "ffffff",
	"callCancelFg":                  "777777",
	"callBarBg":                     "2b5278",
	"callBarBgMuted":                "3e546a",
	"callBarFg":                     "ffffff",
	"callArrowFg":                   "4fb944",
	"callArrowMissedFg":             "e65050",
	"introBg":                       "17212b",
	"introTitleFg":                  "f5f5f5",
	"introDescriptionFg":            "708499",
	"introErrorFg":                  "e65050",
	"introCoverTopBg":               "2c5d85",
	"introCoverBottomBg":            "2c5d85",
	"mediaInFg":                     "708499",
	"mediaOutFg":                    "7da8d3",
	"mediaviewFileBg":               "17212b",
	"mediaviewFileNameFg":           "f5f5f5",
	"mediaviewFileSizeFg":           "708499",
	"mediaviewFileExtFg":            "ffffff",
	"mediaviewMenuBg":               "383838",
	"mediaviewMenuBgOver":           "505050",
	"mediaviewMenuFg":               "ffffff",
	"mediaviewBg":                   "222222eb",
	"mediaviewVideoBg":              "000000",
	"mediaviewControlBg":            "0000003c",
	"mediaviewControlFg":            "ffffff",
	"mediaviewCaptionBg":            "11111180",
	"mediaviewCaptionFg":            "ffffff",
	"mediaviewTextLinkFg":           "91d9ff",
	"mediaviewSaveMsgBg":            "000000cc",
	"mediaviewSaveMsgFg":            "ffffff",
	"mediaviewPlaybackActive":       "c7c7c7",
	"mediaviewPlaybackInactive":     "252525",
	"mediaviewPlaybackProgressFg":   "ffffffc7",
	"mediaviewPlaybackIconFg":       "c7c7c7",
	"mediaviewTransparentBg":        "ffffff",
	"mediaviewTransparentFg":        "cccccc",
	"notificationBg":                "232e3c",
	"layerBg":                       "0000007f",
	"cancelIconFg":                  "6b7f94",
	"boxBg":                         "17212b",
	"boxTextFg":                     "f5f5f5",
	"boxTextFgGood":                 "4fb944",
	"boxTextFgError":                "e65050",
	"boxTitleFg":                    "f5f5f5",
	"boxSearchBg":                   "17212b",
	"boxTitleAdditionalFg":          "708499",
	"boxTitleCloseFg":               "6b7f94",
	"contactsBg":                    "17212b",
	"contactsBgOver":                "232e3c",
	"contactsNameFg":                "f5f5f5",
	"contactsStatusFg":              "708499",
	"contactsStatusFgOnline":        "4fae4e",
	"photoCropFadeBg":               "0000007f",
	"trayCounterBg":                 "f23c34",
	"trayCounterBgMute":             "888888",
	"trayCounterFg":                 "ffffff",
	"smallCloseIconFg":              "6b7f94",
	"radialFg":                      "ffffff",
	"radialBg":                      "00000056",
	"emojiPanBg":                    "17212b",
	"emojiPanCategories":            "0e1621",
	"emojiPanHeaderFg":              "708499",
	"stickerPreviewBg":              "17212bb0",
}
